package tiling

import "github.com/1broseidon/termgrid/internal/platform"

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeTiled         Outcome = "tiled"
	OutcomeHidden        Outcome = "hidden"
	OutcomeNoMatch       Outcome = "no_match"
	OutcomeNothingToTile Outcome = "nothing_to_tile"
)

// Placement is one window of a run together with its assigned rectangle and
// the result of applying it. Rect is zero for hide runs.
type Placement struct {
	Window platform.Window
	Rect   platform.Rect
	Err    *ApplyError
}

// Summary aggregates a finished run. It is discarded once reported.
type Summary struct {
	Keyword    string
	Outcome    Outcome
	Preference Preference
	Gap        int
	Plan       GridPlan
	Screen     platform.ScreenSize
	Placements []Placement
	Attempted  int
	Succeeded  int
	Failures   []*ApplyError
	Warnings   []string
	States     []State
}

// Report is the serializable form of a Summary.
type Report struct {
	Keyword   string              `json:"keyword"`
	Outcome   Outcome             `json:"outcome"`
	Layout    string              `json:"layout,omitempty"`
	Gap       int                 `json:"gap"`
	Columns   int                 `json:"columns"`
	PerColumn []int               `json:"per_column"`
	Screen    platform.ScreenSize `json:"screen"`
	Attempted int                 `json:"attempted"`
	Succeeded int                 `json:"succeeded"`
	Windows   []PlacementReport   `json:"windows"`
	Warnings  []string            `json:"warnings,omitempty"`
	States    []State             `json:"states"`
}

// PlacementReport is the serializable form of a Placement.
type PlacementReport struct {
	ID    uint32         `json:"id"`
	Title string         `json:"title"`
	Class string         `json:"class"`
	Rect  *platform.Rect `json:"rect,omitempty"`
	Op    string         `json:"failed_op,omitempty"`
	Error string         `json:"error,omitempty"`
}

// Report converts the summary for JSON output.
func (s *Summary) Report() Report {
	r := Report{
		Keyword:   s.Keyword,
		Outcome:   s.Outcome,
		Gap:       s.Gap,
		Columns:   s.Plan.Columns,
		PerColumn: s.Plan.PerColumn,
		Screen:    s.Screen,
		Attempted: s.Attempted,
		Succeeded: s.Succeeded,
		Windows:   make([]PlacementReport, 0, len(s.Placements)),
		Warnings:  s.Warnings,
		States:    s.States,
	}
	if r.PerColumn == nil {
		r.PerColumn = []int{}
	}
	if s.Outcome != OutcomeHidden {
		r.Layout = s.Preference.String()
	}
	for _, p := range s.Placements {
		pr := PlacementReport{ID: uint32(p.Window.ID), Title: p.Window.Title, Class: p.Window.Class}
		if s.Outcome != OutcomeHidden {
			rect := p.Rect
			pr.Rect = &rect
		}
		if p.Err != nil {
			pr.Op = p.Err.Op
			pr.Error = p.Err.Err.Error()
		}
		r.Windows = append(r.Windows, pr)
	}
	return r
}
