package tiling

import (
	"errors"
	"fmt"

	"github.com/1broseidon/termgrid/internal/platform"
)

// ErrInvalidGridState marks a planner/assigner contract violation. A run that
// hits it halts immediately.
var ErrInvalidGridState = errors.New("invalid grid state")

// InvalidGridStateError reports a mismatch between discovered windows and
// assigned rectangles.
type InvalidGridStateError struct {
	Windows int
	Rects   int
	Err     error
}

func (e *InvalidGridStateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %d windows, %d rects: %v", ErrInvalidGridState, e.Windows, e.Rects, e.Err)
	}
	return fmt.Sprintf("%v: %d windows, %d rects", ErrInvalidGridState, e.Windows, e.Rects)
}

func (e *InvalidGridStateError) Is(target error) bool {
	return target == ErrInvalidGridState
}

func (e *InvalidGridStateError) Unwrap() error {
	return e.Err
}

// Window operations reported in ApplyError.
const (
	OpRestore   = "restore"
	OpSetBounds = "set_bounds"
	OpMinimize  = "minimize"
)

// ApplyError is a failed window-system call for a single window. It never
// stops the remaining windows from being processed.
type ApplyError struct {
	Window platform.Window
	Op     string
	Err    error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("%s window 0x%x (%q): %v", e.Op, uint32(e.Window.ID), e.Window.Title, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}
