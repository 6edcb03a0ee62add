package x11

import (
	"errors"
	"strings"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestMoveResize(t *testing.T) {
	ewmhErr := errors.New("client message failed")
	badWindow := errors.New("BadWindow")

	tests := []struct {
		name       string
		ewmh       error
		direct     error
		wantDirect bool
		wantErr    []error
	}{
		{name: "ewmh succeeds", wantDirect: false},
		{name: "fallback succeeds", ewmh: ewmhErr, wantDirect: true},
		{name: "both fail", ewmh: ewmhErr, direct: badWindow, wantDirect: true, wantErr: []error{ewmhErr, badWindow}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			err := moveResize(42,
				func() error { return tt.ewmh },
				func() error {
					called = true
					return tt.direct
				},
			)
			if called != tt.wantDirect {
				t.Fatalf("expected direct call %v, got %v", tt.wantDirect, called)
			}
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error")
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Fatalf("expected %v to wrap %v", err, want)
				}
			}
			if !strings.Contains(err.Error(), "window 42") {
				t.Fatalf("expected window id in %q", err.Error())
			}
		})
	}
}

func TestConfigureValues(t *testing.T) {
	mask, values := configureValues(-10, 5, 800, 600)
	wantMask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	if mask != wantMask {
		t.Fatalf("expected mask %#x, got %#x", wantMask, mask)
	}
	want := []uint32{0xfffffff6, 5, 800, 600}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("value %d: expected %#x, got %#x", i, want[i], values[i])
		}
	}
}
