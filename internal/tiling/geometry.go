package tiling

import (
	"errors"
	"fmt"

	"github.com/1broseidon/termgrid/internal/platform"
)

// Window dimension limits. Vertical layouts clamp height, horizontal layouts
// clamp width, so terminals stay readable.
const (
	MinWindowHeight = 200
	MaxWindowHeight = 600
	MinWindowWidth  = 300
	MaxWindowWidth  = 800
)

// ErrInsufficientSpace is returned when the gap leaves no room for windows.
var ErrInsufficientSpace = errors.New("insufficient space for layout")

// Assign computes one rectangle per window for plan on a screen of the given
// size. Rectangles are returned in window arrival order: rect i belongs to
// the i-th window handed to the plan.
//
// A plan with no columns or no rows yields an empty slice.
func Assign(plan GridPlan, screen platform.ScreenSize, gap int, pref Preference) ([]platform.Rect, error) {
	maxRows := plan.MaxRows()
	if plan.Columns == 0 || maxRows == 0 {
		return []platform.Rect{}, nil
	}
	if len(plan.PerColumn) != plan.Columns {
		return nil, fmt.Errorf("plan has %d columns but %d column counts", plan.Columns, len(plan.PerColumn))
	}

	cols := plan.Columns
	availableWidth := screen.Width - gap*(cols+1)
	availableHeight := screen.Height - gap*(maxRows+1)

	// Only the unclamped dimension can run out: vertical clamps height and
	// horizontal clamps width.
	if pref == Horizontal {
		height := availableHeight / maxRows
		if height <= 0 {
			return nil, insufficientSpace(screen, cols, maxRows, gap)
		}
		return assignRows(plan, gap, clamp(availableWidth/cols, MinWindowWidth, MaxWindowWidth), height), nil
	}
	width := availableWidth / cols
	if width <= 0 {
		return nil, insufficientSpace(screen, cols, maxRows, gap)
	}
	return assignColumns(plan, gap, width, availableHeight), nil
}

func insufficientSpace(screen platform.ScreenSize, cols, rows, gap int) error {
	return fmt.Errorf(
		"%w: screen=%dx%d cols=%d rows=%d gap=%d",
		ErrInsufficientSpace, screen.Width, screen.Height, cols, rows, gap,
	)
}

// assignColumns fills column 0 top to bottom, then column 1, and so on. Each
// column divides the available height by its own row count.
func assignColumns(plan GridPlan, gap, width, availableHeight int) []platform.Rect {
	rects := make([]platform.Rect, 0, plan.Total())
	for col, rows := range plan.PerColumn {
		if rows <= 0 {
			continue
		}
		height := clamp(availableHeight/rows, MinWindowHeight, MaxWindowHeight)
		x := gap + col*(width+gap)
		for row := 0; row < rows; row++ {
			rects = append(rects, platform.Rect{
				X:      x,
				Y:      gap + row*(height+gap),
				Width:  width,
				Height: height,
			})
		}
	}
	return rects
}

// assignRows fills the grid row by row. A column only receives a window on
// row r if it holds more than r windows.
func assignRows(plan GridPlan, gap, width, height int) []platform.Rect {
	total := plan.Total()
	rects := make([]platform.Rect, 0, total)
	for row := 0; row < plan.MaxRows(); row++ {
		for col, rows := range plan.PerColumn {
			if len(rects) >= total {
				break
			}
			if row < rows {
				rects = append(rects, platform.Rect{
					X:      gap + col*(width+gap),
					Y:      gap + row*(height+gap),
					Width:  width,
					Height: height,
				})
			}
		}
	}
	return rects
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
