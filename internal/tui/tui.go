package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/1broseidon/termgrid/internal/platform"
	"github.com/1broseidon/termgrid/internal/terminals"
	"github.com/1broseidon/termgrid/internal/tiling"
)

// Action is what the user chose to do with the matched windows.
type Action int

const (
	ActionNone Action = iota
	ActionTile
	ActionHide
)

// Selection is the result of a picker session. Action is ActionNone when the
// user quit without choosing.
type Selection struct {
	Action     Action
	Keyword    string
	Preference tiling.Preference
}

// Options seeds the picker.
type Options struct {
	Preference     tiling.Preference
	Gap            int
	FallbackScreen platform.ScreenSize
}

// Run opens the interactive picker. It never touches windows itself; the
// caller acts on the returned Selection once the screen is restored.
func Run(ws platform.WindowSystem, detector *terminals.Detector, opts Options) (Selection, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return Selection{}, fmt.Errorf("pick requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	final, err := tea.NewProgram(newModel(ws, detector, opts), tea.WithAltScreen()).Run()
	if err != nil {
		return Selection{}, err
	}
	return final.(model).selection, nil
}
