package platform

import "fmt"

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Overlaps reports whether r and other share any pixel.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width && other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height && other.Y < r.Y+r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// ScreenSize is the pixel size of the display that windows are tiled on.
type ScreenSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultScreenSize is used when the window system cannot report its size.
var DefaultScreenSize = ScreenSize{Width: 1920, Height: 1080}

// Window is a top-level window as reported by the window system. It is
// treated as an immutable value for the duration of one tiling run.
type Window struct {
	ID    WindowID `json:"id"`
	Title string   `json:"title"`
	Class string   `json:"class"`
}

// WindowSystem abstracts the window-system operations termgrid needs.
//
// Every call may fail independently. EnumerateVisibleWindows may return a
// partial list together with an error; callers treat that as a warning.
type WindowSystem interface {
	EnumerateVisibleWindows() ([]Window, error)
	ScreenSize() (ScreenSize, error)
	Restore(id WindowID) error
	Minimize(id WindowID) error
	SetBounds(id WindowID, bounds Rect) error
}
