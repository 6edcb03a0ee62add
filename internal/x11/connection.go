package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server named by $DISPLAY.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// ScreenSize returns the pixel size of the default screen.
func (c *Connection) ScreenSize() (width, height int, err error) {
	screen := c.XUtil.Screen()
	if screen == nil {
		return 0, 0, fmt.Errorf("x11 connection has no default screen")
	}
	if screen.WidthInPixels == 0 || screen.HeightInPixels == 0 {
		return 0, 0, fmt.Errorf("x11 screen reports zero size")
	}
	return int(screen.WidthInPixels), int(screen.HeightInPixels), nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// sendRootMessage delivers an EWMH/ICCCM client message for windowID to the
// root window. The matching xgbutil helpers panic on this library version
// (uint vs int type assertion).
func (c *Connection) sendRootMessage(windowID xproto.Window, atomName string, data []uint32) error {
	atomReply, err := xproto.InternAtom(c.XUtil.Conn(), false,
		uint16(len(atomName)), atomName).Reply()
	if err != nil {
		return fmt.Errorf("failed to intern %s: %w", atomName, err)
	}

	payload := make([]uint32, 5)
	copy(payload, data)

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: windowID,
		Type:   atomReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New(payload),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}
