package tiling

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/1broseidon/termgrid/internal/platform"
	"github.com/1broseidon/termgrid/internal/terminals"
)

// DefaultPacingDelay is the pause after each window operation. It gives the
// target window time to redraw before the next call.
const DefaultPacingDelay = 100 * time.Millisecond

// State is a step of a tiling run. Runs only ever move forward.
type State string

const (
	StateIdle        State = "idle"
	StateDiscovering State = "discovering"
	StatePlanning    State = "planning"
	StateAssigning   State = "assigning"
	StateApplying    State = "applying"
	StateDone        State = "done"
)

// Options configures a Tiler.
type Options struct {
	PacingDelay    time.Duration
	FallbackScreen platform.ScreenSize
	Logger         *slog.Logger
	// Sleep replaces time.Sleep for the pacing delay (primarily for tests).
	Sleep func(time.Duration)
}

// Request describes one tiling run.
type Request struct {
	Keyword    string
	Preference Preference
	Gap        int
}

// Tiler runs discovery, planning, assignment and application against a
// window system. Calls are issued one at a time, in order.
type Tiler struct {
	ws       platform.WindowSystem
	detector *terminals.Detector
	pacing   time.Duration
	fallback platform.ScreenSize
	logger   *slog.Logger
	sleep    func(time.Duration)
}

// NewTiler creates a tiler over ws using detector for discovery.
func NewTiler(ws platform.WindowSystem, detector *terminals.Detector, opts Options) *Tiler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	fallback := opts.FallbackScreen
	if fallback.Width <= 0 || fallback.Height <= 0 {
		fallback = platform.DefaultScreenSize
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	pacing := opts.PacingDelay
	if pacing < 0 {
		pacing = 0
	}

	return &Tiler{
		ws:       ws,
		detector: detector,
		pacing:   pacing,
		fallback: fallback,
		logger:   logger,
		sleep:    sleep,
	}
}

// run carries the transient state of one invocation.
type run struct {
	summary *Summary
	logger  *slog.Logger
}

func (t *Tiler) newRun(keyword string) *run {
	keyword = strings.TrimSpace(keyword)
	return &run{
		summary: &Summary{
			Keyword:    keyword,
			Placements: []Placement{},
			States:     []State{StateIdle},
		},
		logger: t.logger.With("keyword", keyword),
	}
}

func (r *run) enter(s State) {
	r.summary.States = append(r.summary.States, s)
	r.logger.Debug("tiling state", "state", s)
}

func (r *run) warn(msg string, err error) {
	r.summary.Warnings = append(r.summary.Warnings, fmt.Sprintf("%s: %v", msg, err))
	r.logger.Warn(msg, "error", err)
}

func (r *run) finish(outcome Outcome) *Summary {
	r.enter(StateDone)
	s := r.summary
	s.Outcome = outcome
	s.Attempted = len(s.Placements)
	s.Succeeded = lo.CountBy(s.Placements, func(p Placement) bool { return p.Err == nil })
	s.Failures = lo.FilterMap(s.Placements, func(p Placement, _ int) (*ApplyError, bool) {
		return p.Err, p.Err != nil
	})
	r.logger.Info("run complete",
		"outcome", s.Outcome,
		"attempted", s.Attempted,
		"succeeded", s.Succeeded,
		"failed", len(s.Failures))
	return s
}

// discover finds the matching terminals. Enumeration failures are downgraded
// to warnings and the partial list is kept.
func (t *Tiler) discover(r *run) []platform.Window {
	r.enter(StateDiscovering)
	windows, err := t.detector.FindTerminals(t.ws, r.summary.Keyword)
	if err != nil {
		r.warn("window enumeration failed", err)
	}
	r.logger.Info("discovered terminals", "count", len(windows))
	for i, w := range windows {
		r.logger.Debug("terminal", "index", i+1, "id", fmt.Sprintf("0x%x", uint32(w.ID)), "class", w.Class, "title", w.Title)
	}
	return windows
}

func (t *Tiler) screenSize(r *run) platform.ScreenSize {
	screen, err := t.ws.ScreenSize()
	if err != nil || screen.Width <= 0 || screen.Height <= 0 {
		if err == nil {
			err = fmt.Errorf("window system reported %dx%d", screen.Width, screen.Height)
		}
		r.warn(fmt.Sprintf("screen size unavailable, using %dx%d", t.fallback.Width, t.fallback.Height), err)
		return t.fallback
	}
	return screen
}

// Tile arranges the terminals matching req.Keyword into a grid.
//
// NoMatch and per-window failures are reported through the Summary. The only
// error returned mid-run is an InvalidGridStateError or ErrInsufficientSpace,
// both of which halt before any window is touched.
func (t *Tiler) Tile(req Request) (*Summary, error) {
	if req.Gap < 0 {
		return nil, fmt.Errorf("gap must be >= 0, got %d", req.Gap)
	}

	r := t.newRun(req.Keyword)
	r.summary.Preference = req.Preference
	r.summary.Gap = req.Gap

	windows := t.discover(r)
	if len(windows) == 0 {
		return r.finish(OutcomeNoMatch), nil
	}

	r.enter(StatePlanning)
	plan := Plan(len(windows), req.Preference)
	r.summary.Plan = plan
	r.logger.Info("grid planned",
		"layout", req.Preference,
		"columns", plan.Columns,
		"per_column", plan.PerColumn)

	r.enter(StateAssigning)
	screen := t.screenSize(r)
	r.summary.Screen = screen
	rects, err := Assign(plan, screen, req.Gap, req.Preference)
	if err != nil {
		if errors.Is(err, ErrInsufficientSpace) {
			return nil, err
		}
		return nil, &InvalidGridStateError{Windows: len(windows), Rects: 0, Err: err}
	}
	if len(rects) == 0 {
		return r.finish(OutcomeNothingToTile), nil
	}
	if len(rects) != len(windows) {
		return nil, &InvalidGridStateError{Windows: len(windows), Rects: len(rects)}
	}

	r.enter(StateApplying)
	for i, w := range windows {
		rect := rects[i]
		placement := Placement{Window: w, Rect: rect}
		if err := t.ws.Restore(w.ID); err != nil {
			placement.Err = &ApplyError{Window: w, Op: OpRestore, Err: err}
		} else if err := t.ws.SetBounds(w.ID, rect); err != nil {
			placement.Err = &ApplyError{Window: w, Op: OpSetBounds, Err: err}
		}

		if placement.Err != nil {
			r.logger.Warn("failed to tile window", "index", i+1, "title", w.Title, "error", placement.Err.Err)
		} else {
			r.logger.Info("tiled window", "index", i+1, "title", w.Title, "rect", rect.String())
		}
		r.summary.Placements = append(r.summary.Placements, placement)
		t.sleep(t.pacing)
	}

	return r.finish(OutcomeTiled), nil
}

// Hide minimizes every terminal matching keyword instead of tiling.
func (t *Tiler) Hide(keyword string) *Summary {
	r := t.newRun(keyword)

	windows := t.discover(r)
	if len(windows) == 0 {
		return r.finish(OutcomeNoMatch)
	}

	r.enter(StateApplying)
	for i, w := range windows {
		placement := Placement{Window: w}
		if err := t.ws.Minimize(w.ID); err != nil {
			placement.Err = &ApplyError{Window: w, Op: OpMinimize, Err: err}
			r.logger.Warn("failed to minimize window", "index", i+1, "title", w.Title, "error", err)
		} else {
			r.logger.Info("minimized window", "index", i+1, "title", w.Title)
		}
		r.summary.Placements = append(r.summary.Placements, placement)
		t.sleep(t.pacing)
	}

	return r.finish(OutcomeHidden)
}

// List returns every titled terminal window regardless of keyword, along with
// any enumeration warning.
func (t *Tiler) List() ([]platform.Window, []string) {
	windows, err := t.ws.EnumerateVisibleWindows()
	var warnings []string
	if err != nil {
		t.logger.Warn("window enumeration failed", "error", err)
		warnings = append(warnings, fmt.Sprintf("window enumeration failed: %v", err))
	}
	return t.detector.Terminals(windows), warnings
}
