package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/1broseidon/termgrid/internal/platform"
	"github.com/1broseidon/termgrid/internal/tiling"
)

// outputWidth returns the terminal width of w, or 0 when w is not a terminal.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// truncate shortens s to at most max runes, marking the cut with "...".
// A max of 0 disables truncation.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func windowLine(w platform.Window, width int) string {
	prefix := fmt.Sprintf("  0x%08x  %-22s ", uint32(w.ID), w.Class)
	if width > 0 {
		return prefix + truncate(w.Title, width-len(prefix))
	}
	return prefix + w.Title
}

func printWindows(out io.Writer, windows []platform.Window, width int) {
	if len(windows) == 0 {
		fmt.Fprintln(out, "No terminal windows found")
		return
	}
	fmt.Fprintf(out, "Found %d terminal windows:\n", len(windows))
	for _, w := range windows {
		fmt.Fprintln(out, windowLine(w, width))
	}
}

func printSummary(out io.Writer, s *tiling.Summary, width int) {
	if s.Outcome == tiling.OutcomeNoMatch {
		fmt.Fprintf(out, "No terminal windows matching %q\n", s.Keyword)
		fmt.Fprintln(out, "Use --list to see all terminal windows")
		return
	}

	fmt.Fprintf(out, "Found %d terminal windows matching %q:\n", len(s.Placements), s.Keyword)
	for _, p := range s.Placements {
		line := windowLine(p.Window, width)
		switch {
		case p.Err != nil:
			line += fmt.Sprintf("\n      %s failed: %v", p.Err.Op, p.Err.Err)
		case s.Outcome == tiling.OutcomeTiled:
			line += "\n      -> " + p.Rect.String()
		}
		fmt.Fprintln(out, line)
	}

	switch s.Outcome {
	case tiling.OutcomeTiled:
		fmt.Fprintf(out, "Tiled %d/%d windows (%s, %d columns %v, gap %d)\n",
			s.Succeeded, s.Attempted, s.Preference, s.Plan.Columns, s.Plan.PerColumn, s.Gap)
	case tiling.OutcomeHidden:
		fmt.Fprintf(out, "Minimized %d/%d windows\n", s.Succeeded, s.Attempted)
	case tiling.OutcomeNothingToTile:
		fmt.Fprintln(out, "Nothing to tile")
	}
	for _, warning := range s.Warnings {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}
}

// printPlan renders a grid plan as one line per column with the rectangles
// it would produce.
func printPlan(out io.Writer, total int, plan tiling.GridPlan, rects []platform.Rect) {
	fmt.Fprintf(out, "%2d windows -> %d columns %v\n", total, plan.Columns, plan.PerColumn)
	for i, r := range rects {
		fmt.Fprintf(out, "  %2d  %s\n", i+1, r.String())
	}
}
