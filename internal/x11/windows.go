package x11

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// ClientWindow is a managed top-level window read from the EWMH client list.
type ClientWindow struct {
	ID    xproto.Window
	Title string
	Class string
}

// ListClientWindows returns the normal managed windows on the current desktop
// (plus sticky windows) in client-list order. Iconified windows are included
// so that they can be restored. Per-window property failures skip that window
// and are joined into the returned error alongside the partial list.
func (c *Connection) ListClientWindows() ([]ClientWindow, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	currentDesktop, desktopErr := c.GetCurrentDesktop()
	hasCurrentDesktop := desktopErr == nil

	var errs []error
	windows := make([]ClientWindow, 0, len(clients))
	for _, windowID := range clients {
		if !c.IsNormalWindow(windowID) {
			continue
		}

		if hasCurrentDesktop {
			desktop, err := c.GetWindowDesktop(windowID)
			if err == nil && desktop != -1 && desktop != currentDesktop {
				continue
			}
		}

		class, err := c.windowClass(windowID)
		if err != nil {
			errs = append(errs, fmt.Errorf("window 0x%x: %w", uint32(windowID), err))
			continue
		}

		windows = append(windows, ClientWindow{
			ID:    windowID,
			Title: c.windowTitle(windowID),
			Class: class,
		})
	}

	return windows, errors.Join(errs...)
}

// MoveResizeWindow moves and resizes a window to the specified geometry.
// EWMH is tried first for WM compatibility; a checked ConfigureWindow request
// is the fallback, and its failure is reported.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	return moveResize(windowID,
		func() error {
			return ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, width, height)
		},
		func() error {
			mask, values := configureValues(x, y, width, height)
			return xproto.ConfigureWindowChecked(c.XUtil.Conn(), windowID, mask, values).Check()
		},
	)
}

func moveResize(windowID xproto.Window, viaEWMH, direct func() error) error {
	err := viaEWMH()
	if err == nil {
		return nil
	}
	if derr := direct(); derr != nil {
		return fmt.Errorf("failed to move window %d: %w", windowID, errors.Join(err, derr))
	}
	return nil
}

// configureValues builds the ConfigureWindow mask and value list for a
// position and size. Negative coordinates travel as two's complement.
func configureValues(x, y, width, height int) (uint16, []uint32) {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	return mask, []uint32{uint32(int32(x)), uint32(int32(y)), uint32(width), uint32(height)}
}

// RestoreWindow brings a window back to its normal state: maximized and hidden
// states are cleared, the window is mapped and activated.
func (c *Connection) RestoreWindow(windowID xproto.Window) error {
	if err := c.unmaximizeWindow(windowID); err != nil {
		return err
	}
	if err := xproto.MapWindowChecked(c.XUtil.Conn(), windowID).Check(); err != nil {
		return fmt.Errorf("failed to map window: %w", err)
	}
	return c.ActivateWindow(windowID)
}

// MinimizeWindow iconifies a window via WM_CHANGE_STATE.
func (c *Connection) MinimizeWindow(windowID xproto.Window) error {
	const iconicState = 3
	return c.sendRootMessage(windowID, "WM_CHANGE_STATE", []uint32{iconicState})
}

// unmaximizeWindow removes maximized and hidden states from a window
func (c *Connection) unmaximizeWindow(windowID xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		// No _NET_WM_STATE means nothing to clear.
		return nil
	}

	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_HIDDEN":
			const removeState = 0
			if err := ewmh.WmStateReq(c.XUtil, windowID, removeState, state); err != nil {
				return fmt.Errorf("failed to clear %s: %w", state, err)
			}
		}
	}
	return nil
}

// IsNormalWindow checks if a window is a normal application window
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine type, assume it's normal
		return true
	}

	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}

	// If no specific type is set, assume it's normal
	return len(types) == 0
}

func (c *Connection) windowClass(windowID xproto.Window) (string, error) {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return "", fmt.Errorf("failed to read WM_CLASS: %w", err)
	}
	return strings.TrimSpace(wmClass.Class), nil
}

func (c *Connection) windowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}
