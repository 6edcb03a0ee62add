package tiling

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Preference selects how windows are arranged.
//
// Vertical favors few tall columns filled column by column and clamps window
// height. Horizontal favors a near-square grid filled row by row and clamps
// window width.
type Preference int

const (
	Vertical Preference = iota
	Horizontal
)

func (p Preference) String() string {
	switch p {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Preference(%d)", int(p))
	}
}

// ParsePreference parses "vertical" or "horizontal" (case-insensitive).
func ParsePreference(s string) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("invalid layout %q (want vertical or horizontal)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Preference) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Preference) UnmarshalText(text []byte) error {
	parsed, err := ParsePreference(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// GridPlan is the column count and the number of windows in each column.
type GridPlan struct {
	Columns   int   `json:"columns"`
	PerColumn []int `json:"per_column"`
}

// MaxRows returns the largest per-column count.
func (g GridPlan) MaxRows() int {
	return lo.Max(g.PerColumn)
}

// Total returns the number of windows the plan places.
func (g GridPlan) Total() int {
	return lo.Sum(g.PerColumn)
}

// maxVerticalColumns caps the column count for vertical layouts.
const maxVerticalColumns = 4

// Plan decides the grid for total windows.
//
// Whenever windows do not divide evenly, the leftover windows go to the
// earliest columns, one each.
func Plan(total int, pref Preference) GridPlan {
	switch {
	case total <= 0:
		return GridPlan{Columns: 0, PerColumn: []int{}}
	case total == 1:
		return GridPlan{Columns: 1, PerColumn: []int{1}}
	case total == 2:
		if pref == Vertical {
			return GridPlan{Columns: 1, PerColumn: []int{2}}
		}
		return GridPlan{Columns: 2, PerColumn: []int{1, 1}}
	}

	if pref == Horizontal {
		cols := ceilSqrt(total)
		if cols > total {
			cols = total
		}
		return distribute(total, cols)
	}

	switch {
	case total == 3:
		return GridPlan{Columns: 2, PerColumn: []int{2, 1}}
	case total <= 6:
		first := (total + 1) / 2
		return GridPlan{Columns: 2, PerColumn: []int{first, total - first}}
	case total <= 9:
		return distribute(total, 3)
	default:
		// Roughly three windows per column.
		cols := (total + 2) / 3
		if cols > maxVerticalColumns {
			cols = maxVerticalColumns
		}
		return distribute(total, cols)
	}
}

// distribute spreads total windows over cols columns, front-loading the remainder.
func distribute(total, cols int) GridPlan {
	base := total / cols
	remainder := total % cols

	counts := make([]int, cols)
	for i := range counts {
		counts[i] = base
		if i < remainder {
			counts[i]++
		}
	}
	return GridPlan{Columns: cols, PerColumn: counts}
}

// ceilSqrt returns the smallest c with c*c >= n, for n >= 1.
func ceilSqrt(n int) int {
	c := 1
	for c*c < n {
		c++
	}
	return c
}
