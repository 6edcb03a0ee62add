package terminals

import (
	"errors"
	"testing"

	"github.com/1broseidon/termgrid/internal/platform"
)

func testWindows() []platform.Window {
	return []platform.Window{
		{ID: 1, Title: "gas1 - PowerShell", Class: "CASCADIA_HOSTING_WINDOW_CLASS"},
		{ID: 2, Title: "GAS2 - bash", Class: "alacritty"},
		{ID: 3, Title: "gas notes - Firefox", Class: "firefox"},
		{ID: 4, Title: "gcc1", Class: "kitty"},
		{ID: 5, Title: "", Class: "kitty"},
	}
}

func TestDetector_MatchFiltersByClassAndKeyword(t *testing.T) {
	d := NewDetector([]string{"Alacritty", "kitty", "CASCADIA_HOSTING_WINDOW_CLASS"})

	got := d.Match(testWindows(), "gas")
	want := []platform.WindowID{1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %d (%v)", len(want), len(got), got)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("match %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestDetector_MatchIgnoresSurroundingWhitespace(t *testing.T) {
	d := NewDetector([]string{"alacritty", "kitty"})

	if got := d.Match(testWindows(), " GAS\t"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only window 2, got %v", got)
	}
	if got := d.Match(testWindows(), "   "); len(got) != 3 {
		t.Fatalf("expected blank keyword to match 3 terminals, got %d", len(got))
	}
}

func TestDetector_EmptyKeywordMatchesAllTerminals(t *testing.T) {
	d := NewDetector([]string{"alacritty", "kitty"})

	got := d.Match(testWindows(), "")
	if len(got) != 3 {
		t.Fatalf("expected 3 terminals, got %d", len(got))
	}
}

func TestDetector_TerminalsSkipsUntitled(t *testing.T) {
	d := NewDetector([]string{"alacritty", "kitty"})

	got := d.Terminals(testWindows())
	if len(got) != 2 {
		t.Fatalf("expected 2 titled terminals, got %d", len(got))
	}
	for _, w := range got {
		if w.Title == "" {
			t.Fatalf("expected untitled window to be skipped")
		}
	}
}

func TestDetector_ClassMatchIsExact(t *testing.T) {
	d := NewDetector([]string{"st"})
	if d.IsTerminalClass("firefox-steam") {
		t.Fatalf("expected substring of class not to match")
	}
	if !d.IsTerminalClass("ST") {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestDetector_ClassMatchContains(t *testing.T) {
	d := NewDetector([]string{"ConsoleWindowClass", "Terminal"}, WithClassMatch(ClassMatchContains))

	tests := []struct {
		class string
		want  bool
	}{
		{class: "ConsoleWindowClass", want: true},
		{class: "gnome-terminal-server", want: true},
		{class: "VirtualConsoleClass", want: false},
		{class: "firefox", want: false},
		{class: "", want: false},
	}
	for _, tt := range tests {
		if got := d.IsTerminalClass(tt.class); got != tt.want {
			t.Errorf("IsTerminalClass(%q) = %v, want %v", tt.class, got, tt.want)
		}
	}
}

func TestParseClassMatch(t *testing.T) {
	if m, err := ParseClassMatch(" Contains "); err != nil || m != ClassMatchContains {
		t.Fatalf("expected contains, got %q, %v", m, err)
	}
	if _, err := ParseClassMatch("fuzzy"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestDetector_FindTerminalsKeepsPartialResults(t *testing.T) {
	ws := platform.NewSimulated(platform.DefaultScreenSize, testWindows()...)
	boom := errors.New("enumeration failed midway")
	ws.SetEnumerateError(boom)

	d := NewDetector([]string{"kitty"})
	got, err := d.FindTerminals(ws, "gcc")
	if !errors.Is(err, boom) {
		t.Fatalf("expected enumeration error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("expected window 4, got %v", got)
	}
}
