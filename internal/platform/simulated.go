package platform

import (
	"fmt"
	"sync"
)

// Call records one mutating operation issued against a Simulated window system.
type Call struct {
	Op     string
	Window WindowID
	Bounds Rect
}

// SimulatedWindow is the in-memory state of one simulated window.
type SimulatedWindow struct {
	Window
	Bounds    Rect
	Minimized bool
}

// Simulated is an in-memory WindowSystem. It backs --simulate runs and tests.
type Simulated struct {
	mu sync.Mutex

	screen    ScreenSize
	screenErr error
	order     []WindowID
	windows   map[WindowID]*SimulatedWindow
	failures  map[WindowID]map[string]error
	enumErr   error
	calls     []Call
}

var _ WindowSystem = (*Simulated)(nil)

// NewSimulated creates a simulated window system of the given screen size
// holding the given windows in enumeration order.
func NewSimulated(screen ScreenSize, windows ...Window) *Simulated {
	s := &Simulated{
		screen:   screen,
		windows:  make(map[WindowID]*SimulatedWindow, len(windows)),
		failures: make(map[WindowID]map[string]error),
	}
	for _, w := range windows {
		s.AddWindow(w)
	}
	return s
}

// SampleWindows returns a small set of terminal windows used by --simulate.
func SampleWindows() []Window {
	return []Window{
		{ID: 0x1400001, Title: "gas1 - bash", Class: "Alacritty"},
		{ID: 0x1400002, Title: "gas2 - bash", Class: "Alacritty"},
		{ID: 0x1600001, Title: "gcc1 - zsh", Class: "kitty"},
		{ID: 0x1600002, Title: "gcc2 - zsh", Class: "kitty"},
		{ID: 0x1800001, Title: "gds - tmux", Class: "XTerm"},
		{ID: 0x1a00001, Title: "Mozilla Firefox", Class: "firefox"},
	}
}

// AddWindow appends a window to the enumeration order.
func (s *Simulated) AddWindow(w Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.windows[w.ID]; !ok {
		s.order = append(s.order, w.ID)
	}
	s.windows[w.ID] = &SimulatedWindow{Window: w}
}

// FailOn makes op ("restore", "minimize" or "set_bounds") fail with err for id.
func (s *Simulated) FailOn(id WindowID, op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures[id] == nil {
		s.failures[id] = make(map[string]error)
	}
	s.failures[id][op] = err
}

// SetEnumerateError makes EnumerateVisibleWindows return err alongside the
// windows it still knows about.
func (s *Simulated) SetEnumerateError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enumErr = err
}

// SetScreenError makes ScreenSize fail with err.
func (s *Simulated) SetScreenError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screenErr = err
}

// Calls returns a copy of every mutating call issued so far.
func (s *Simulated) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// State returns the current state of a window.
func (s *Simulated) State(id WindowID) (SimulatedWindow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[id]
	if !ok {
		return SimulatedWindow{}, false
	}
	return *w, true
}

func (s *Simulated) EnumerateVisibleWindows() ([]Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Window, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.windows[id].Window)
	}
	return out, s.enumErr
}

func (s *Simulated) ScreenSize() (ScreenSize, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screenErr != nil {
		return ScreenSize{}, s.screenErr
	}
	return s.screen, nil
}

func (s *Simulated) Restore(id WindowID) error {
	return s.mutate("restore", id, Rect{}, func(w *SimulatedWindow) {
		w.Minimized = false
	})
}

func (s *Simulated) Minimize(id WindowID) error {
	return s.mutate("minimize", id, Rect{}, func(w *SimulatedWindow) {
		w.Minimized = true
	})
}

func (s *Simulated) SetBounds(id WindowID, bounds Rect) error {
	return s.mutate("set_bounds", id, bounds, func(w *SimulatedWindow) {
		w.Bounds = bounds
	})
}

func (s *Simulated) mutate(op string, id WindowID, bounds Rect, apply func(*SimulatedWindow)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, Call{Op: op, Window: id, Bounds: bounds})

	if err := s.failures[id][op]; err != nil {
		return err
	}
	w, ok := s.windows[id]
	if !ok {
		return fmt.Errorf("window 0x%x not found", uint32(id))
	}
	apply(w)
	return nil
}
