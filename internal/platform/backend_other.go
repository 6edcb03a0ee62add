//go:build !linux

package platform

import (
	"errors"
	"runtime"
)

var errNoLiveBackend = errors.New("no live window system on " + runtime.GOOS + "; run with --simulate")

// LinuxBackend is unavailable outside Linux; every operation fails.
type LinuxBackend struct{}

var _ WindowSystem = (*LinuxBackend)(nil)

// NewLinuxBackendFromDisplay always fails outside Linux.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	return nil, errNoLiveBackend
}

// Disconnect is a no-op.
func (b *LinuxBackend) Disconnect() {}

func (b *LinuxBackend) EnumerateVisibleWindows() ([]Window, error) { return nil, errNoLiveBackend }
func (b *LinuxBackend) ScreenSize() (ScreenSize, error)            { return ScreenSize{}, errNoLiveBackend }
func (b *LinuxBackend) Restore(WindowID) error                     { return errNoLiveBackend }
func (b *LinuxBackend) Minimize(WindowID) error                    { return errNoLiveBackend }
func (b *LinuxBackend) SetBounds(WindowID, Rect) error             { return errNoLiveBackend }
