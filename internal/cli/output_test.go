package cli

import (
	"bytes"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/1broseidon/termgrid/internal/platform"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 0, "short"},
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer title", 10, "a longe..."},
		{"abcdef", 3, "abc"},
		{"日本語のタイトル", 6, "日本語..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestPrintWindows_TruncatesToWidth(t *testing.T) {
	var buf bytes.Buffer
	long := platform.Window{ID: 1, Class: "kitty", Title: strings.Repeat("x", 200)}
	printWindows(&buf, []platform.Window{long}, 80)

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if len([]rune(line)) > 80 {
			t.Fatalf("expected lines within 80 columns, got %d: %q", len(line), line)
		}
	}
}

func TestPrintWindows_Empty(t *testing.T) {
	var buf bytes.Buffer
	printWindows(&buf, nil, 0)
	if !strings.Contains(buf.String(), "No terminal windows found") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestParseScreen(t *testing.T) {
	tests := []struct {
		in      string
		want    platform.ScreenSize
		wantErr bool
	}{
		{in: "1920x1080", want: platform.ScreenSize{Width: 1920, Height: 1080}},
		{in: " 2560X1440 ", want: platform.ScreenSize{Width: 2560, Height: 1440}},
		{in: "1920", wantErr: true},
		{in: "0x100", wantErr: true},
		{in: "axb", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseScreen(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseScreen(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseScreen(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFromConfig(t *testing.T) {
	tests := []struct {
		in   string
		want charmlog.Level
	}{
		{"debug", charmlog.DebugLevel},
		{"info", charmlog.InfoLevel},
		{"warning", charmlog.WarnLevel},
		{"ERROR", charmlog.ErrorLevel},
		{"", charmlog.InfoLevel},
	}
	for _, tt := range tests {
		if got := levelFromConfig(tt.in); got != tt.want {
			t.Errorf("levelFromConfig(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, charmlog.InfoLevel)
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered, got %q", buf.String())
	}
	logger.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected info output, got %q", buf.String())
	}
}
