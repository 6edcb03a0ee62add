package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/termgrid/internal/platform"
	"github.com/1broseidon/termgrid/internal/terminals"
	"github.com/1broseidon/termgrid/internal/tiling"
)

const (
	defaultWidth   = 80
	maxPreviewW    = 64
	maxListedMatch = 8
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
)

// model is the root bubbletea model for the picker.
type model struct {
	ws       platform.WindowSystem
	detector *terminals.Detector
	fallback platform.ScreenSize
	gap      int
	pref     tiling.Preference

	input   textinput.Model
	windows []platform.Window
	matches []platform.Window
	screen  platform.ScreenSize
	warning string

	selection Selection

	width  int
	height int
}

func newModel(ws platform.WindowSystem, detector *terminals.Detector, opts Options) model {
	input := textinput.New()
	input.Placeholder = "keyword"
	input.Prompt = "› "
	input.CharLimit = 128
	input.Focus()

	m := model{
		ws:       ws,
		detector: detector,
		fallback: opts.FallbackScreen,
		gap:      opts.Gap,
		pref:     opts.Preference,
		input:    input,
	}
	m.refresh()
	return m
}

// refresh re-enumerates windows and re-reads the screen size.
func (m *model) refresh() {
	windows, err := m.ws.EnumerateVisibleWindows()
	m.windows = windows
	m.warning = ""
	if err != nil {
		m.warning = fmt.Sprintf("window enumeration failed: %v", err)
	}

	screen, err := m.ws.ScreenSize()
	if err != nil || screen.Width <= 0 || screen.Height <= 0 {
		screen = m.fallback
	}
	m.screen = screen
	m.updateMatches()
}

func (m *model) updateMatches() {
	keyword := strings.TrimSpace(m.input.Value())
	if keyword == "" {
		m.matches = nil
		return
	}
	m.matches = m.detector.Match(m.windows, keyword)
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.selection = Selection{}
			return m, tea.Quit
		case "tab":
			if m.pref == tiling.Vertical {
				m.pref = tiling.Horizontal
			} else {
				m.pref = tiling.Vertical
			}
			return m, nil
		case "ctrl+r":
			m.refresh()
			return m, nil
		case "enter":
			return m.choose(ActionTile)
		case "ctrl+x":
			return m.choose(ActionHide)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.updateMatches()
	return m, cmd
}

// choose quits with action when the keyword matches something.
func (m model) choose(action Action) (tea.Model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}
	m.selection = Selection{
		Action:     action,
		Keyword:    strings.TrimSpace(m.input.Value()),
		Preference: m.pref,
	}
	return m, tea.Quit
}

// View implements tea.Model.
func (m model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("termgrid"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s layout • gap %d • screen %dx%d",
		m.pref, m.gap, m.screen.Width, m.screen.Height)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.warning != "" {
		b.WriteString(warnStyle.Render(m.warning))
		b.WriteString("\n")
	}

	if strings.TrimSpace(m.input.Value()) == "" {
		terms := m.detector.Terminals(m.windows)
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d terminal windows; type part of a title to match them", len(terms))))
		b.WriteString("\n")
	} else {
		b.WriteString(m.matchesView(width))
		b.WriteString(m.previewView(width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Width(width).Render("enter: tile  ctrl-x: minimize  tab: switch layout  ctrl-r: rescan  esc: quit"))
	return b.String()
}

func (m model) matchesView(width int) string {
	if len(m.matches) == 0 {
		return warnStyle.Render("no terminal windows match") + "\n"
	}

	var b strings.Builder
	b.WriteString(matchStyle.Render(fmt.Sprintf("%d matching windows", len(m.matches))))
	b.WriteString("\n")
	for i, w := range m.matches {
		if i == maxListedMatch {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.matches)-maxListedMatch)))
			b.WriteString("\n")
			break
		}
		line := fmt.Sprintf("  %d. %s", i+1, w.Title)
		b.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(line))
		b.WriteString(dimStyle.Render(" (" + w.Class + ")"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) previewView(width int) string {
	if len(m.matches) == 0 {
		return ""
	}

	plan := tiling.Plan(len(m.matches), m.pref)
	rects, err := tiling.Assign(plan, m.screen, m.gap, m.pref)
	if err != nil {
		return "\n" + warnStyle.Render(err.Error()) + "\n"
	}

	canvasW := width - 2
	if canvasW > maxPreviewW {
		canvasW = maxPreviewW
	}
	canvasH := previewHeight(canvasW, m.screen)

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range renderASCIIPreview(rects, m.screen, canvasW, canvasH) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d columns %v • %s", plan.Columns, plan.PerColumn, summarizeRects(rects))))
	b.WriteString("\n")
	return b.String()
}
