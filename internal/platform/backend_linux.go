//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/termgrid/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend implements WindowSystem on top of an X11 connection.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ WindowSystem = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

func (b *LinuxBackend) EnumerateVisibleWindows() ([]Window, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	clients, err := conn.ListClientWindows()
	windows := make([]Window, 0, len(clients))
	for _, c := range clients {
		windows = append(windows, Window{
			ID:    WindowID(c.ID),
			Title: c.Title,
			Class: c.Class,
		})
	}
	return windows, err
}

func (b *LinuxBackend) ScreenSize() (ScreenSize, error) {
	conn, err := b.connection()
	if err != nil {
		return ScreenSize{}, err
	}
	w, h, err := conn.ScreenSize()
	if err != nil {
		return ScreenSize{}, err
	}
	return ScreenSize{Width: w, Height: h}, nil
}

func (b *LinuxBackend) Restore(id WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.RestoreWindow(xproto.Window(id))
}

func (b *LinuxBackend) Minimize(id WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MinimizeWindow(xproto.Window(id))
}

func (b *LinuxBackend) SetBounds(id WindowID, bounds Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MoveResizeWindow(
		xproto.Window(id),
		bounds.X,
		bounds.Y,
		bounds.Width,
		bounds.Height,
	)
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}
