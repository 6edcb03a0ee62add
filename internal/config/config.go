package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/termgrid/internal/platform"
	"github.com/1broseidon/termgrid/internal/terminals"
	"github.com/1broseidon/termgrid/internal/tiling"
)

const (
	DefaultGap           = 5
	DefaultLayout        = "vertical"
	DefaultPacingDelayMS = 100
	DefaultLogLevel      = "info"
	DefaultClassMatch    = string(terminals.ClassMatchExact)
)

// Screen is the fallback screen size used when the window system cannot
// report one.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the effective termgrid configuration.
type Config struct {
	Gap             int       `yaml:"gap"`
	Layout          string    `yaml:"layout"`
	PacingDelayMS   int       `yaml:"pacing_delay_ms"`
	FallbackScreen  Screen    `yaml:"fallback_screen"`
	TerminalClasses ClassList `yaml:"terminal_classes"`
	ClassMatch      string    `yaml:"class_match"`
	LogLevel        string    `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Gap:           DefaultGap,
		Layout:        DefaultLayout,
		PacingDelayMS: DefaultPacingDelayMS,
		FallbackScreen: Screen{
			Width:  platform.DefaultScreenSize.Width,
			Height: platform.DefaultScreenSize.Height,
		},
		TerminalClasses: defaultTerminalClasses(),
		ClassMatch:      DefaultClassMatch,
		LogLevel:        DefaultLogLevel,
	}
}

// Preference returns the configured layout preference.
func (c *Config) Preference() tiling.Preference {
	pref, err := tiling.ParsePreference(c.Layout)
	if err != nil {
		return tiling.Vertical
	}
	return pref
}

// PacingDelay returns the pause between window operations.
func (c *Config) PacingDelay() time.Duration {
	return time.Duration(c.PacingDelayMS) * time.Millisecond
}

// Detector builds the terminal detector for the configured classes.
func (c *Config) Detector() *terminals.Detector {
	match, err := terminals.ParseClassMatch(c.ClassMatch)
	if err != nil {
		match = terminals.ClassMatchExact
	}
	return terminals.NewDetector(c.TerminalClasses, terminals.WithClassMatch(match))
}

func (c *Config) FallbackScreenSize() platform.ScreenSize {
	return platform.ScreenSize{Width: c.FallbackScreen.Width, Height: c.FallbackScreen.Height}
}

// Validate checks the configuration for values the tiler cannot use.
func (c *Config) Validate() error {
	if c.Gap < 0 {
		return &ValidationError{Path: "gap", Err: fmt.Errorf("gap must be >= 0")}
	}
	if _, err := tiling.ParsePreference(c.Layout); err != nil {
		return &ValidationError{Path: "layout", Err: fmt.Errorf("layout must be one of: vertical, horizontal")}
	}
	if c.PacingDelayMS < 0 {
		return &ValidationError{Path: "pacing_delay_ms", Err: fmt.Errorf("pacing_delay_ms must be >= 0")}
	}
	if c.FallbackScreen.Width <= 0 {
		return &ValidationError{Path: "fallback_screen.width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.FallbackScreen.Height <= 0 {
		return &ValidationError{Path: "fallback_screen.height", Err: fmt.Errorf("height must be > 0")}
	}
	if len(c.TerminalClasses) == 0 {
		return &ValidationError{Path: "terminal_classes", Err: fmt.Errorf("terminal_classes must not be empty")}
	}
	for _, class := range c.TerminalClasses {
		if strings.TrimSpace(class) == "" {
			return &ValidationError{Path: "terminal_classes", Err: fmt.Errorf("terminal_classes contains an empty class name")}
		}
	}
	if _, err := terminals.ParseClassMatch(c.ClassMatch); err != nil {
		return &ValidationError{Path: "class_match", Err: fmt.Errorf("class_match must be one of: exact, contains")}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SaveTo writes the configuration to path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func defaultTerminalClasses() ClassList {
	return ClassList{
		// Console hosts.
		"ConsoleWindowClass",
		"CASCADIA_HOSTING_WINDOW_CLASS",
		"PseudoConsoleWindow",
		"WindowsTerminal",
		"VirtualConsoleClass",
		// X11 terminals.
		"Alacritty",
		"kitty",
		"com.mitchellh.ghostty",
		"ghostty",
		"Gnome-terminal",
		"gnome-terminal-server",
		"Tilix",
		"com.gexperts.Tilix",
		"XTerm",
		"UXTerm",
		"konsole",
		"terminator",
		"Terminator",
		"URxvt",
		"urxvt",
		"st",
		"st-256color",
		"wezterm",
	}
}
