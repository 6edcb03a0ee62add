package terminals

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/1broseidon/termgrid/internal/platform"
)

// ClassMatch selects how a window class is compared with the allow-list.
type ClassMatch string

const (
	// ClassMatchExact requires the class to equal an entry, ignoring case.
	ClassMatchExact ClassMatch = "exact"
	// ClassMatchContains accepts a class that contains an entry, ignoring case.
	ClassMatchContains ClassMatch = "contains"
)

// ParseClassMatch parses "exact" or "contains".
func ParseClassMatch(s string) (ClassMatch, error) {
	switch m := ClassMatch(strings.ToLower(strings.TrimSpace(s))); m {
	case ClassMatchExact, ClassMatchContains:
		return m, nil
	}
	return "", fmt.Errorf("unknown class match %q (want exact or contains)", s)
}

// Detector identifies terminal windows by their window class.
type Detector struct {
	terminalClasses map[string]bool
	classMatch      ClassMatch
}

// Option configures a Detector.
type Option func(*Detector)

// WithClassMatch sets how classes are compared. The default is exact.
func WithClassMatch(m ClassMatch) Option {
	return func(d *Detector) {
		d.classMatch = m
	}
}

// NewDetector creates a new terminal detector with the given terminal class list.
// Class matching is exact but case-insensitive unless WithClassMatch says otherwise.
func NewDetector(terminalClasses []string, opts ...Option) *Detector {
	classMap := make(map[string]bool, len(terminalClasses))
	for _, class := range terminalClasses {
		class = strings.TrimSpace(class)
		if class == "" {
			continue
		}
		classMap[strings.ToLower(class)] = true
	}

	d := &Detector{
		terminalClasses: classMap,
		classMatch:      ClassMatchExact,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IsTerminalClass checks if the given window class matches a known terminal
func (d *Detector) IsTerminalClass(class string) bool {
	class = strings.ToLower(strings.TrimSpace(class))
	if d.terminalClasses[class] {
		return true
	}
	if d.classMatch != ClassMatchContains || class == "" {
		return false
	}
	return lo.SomeBy(lo.Keys(d.terminalClasses), func(entry string) bool {
		return strings.Contains(class, entry)
	})
}

// Match filters windows down to terminals whose title contains keyword
// (case-insensitive, surrounding whitespace ignored). Enumeration order is
// preserved. An empty keyword matches every terminal.
func (d *Detector) Match(windows []platform.Window, keyword string) []platform.Window {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	return lo.Filter(windows, func(w platform.Window, _ int) bool {
		return d.IsTerminalClass(w.Class) && strings.Contains(strings.ToLower(w.Title), needle)
	})
}

// Terminals filters windows down to terminals that carry a title.
func (d *Detector) Terminals(windows []platform.Window) []platform.Window {
	return lo.Filter(windows, func(w platform.Window, _ int) bool {
		return d.IsTerminalClass(w.Class) && strings.TrimSpace(w.Title) != ""
	})
}

// FindTerminals enumerates windows through ws and returns the terminals
// matching keyword. Enumeration errors are returned together with whatever
// matches the partial list produced.
func (d *Detector) FindTerminals(ws platform.WindowSystem, keyword string) ([]platform.Window, error) {
	windows, err := ws.EnumerateVisibleWindows()
	return d.Match(windows, keyword), err
}
