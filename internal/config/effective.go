package config

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// BuildEffectiveConfig applies raw over the defaults.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.Gap != nil {
		cfg.Gap = *raw.Gap
	}
	if raw.Layout != nil {
		cfg.Layout = strings.ToLower(strings.TrimSpace(*raw.Layout))
	}
	if raw.PacingDelayMS != nil {
		cfg.PacingDelayMS = *raw.PacingDelayMS
	}
	if raw.FallbackScreen != nil {
		if raw.FallbackScreen.Width != nil {
			cfg.FallbackScreen.Width = *raw.FallbackScreen.Width
		}
		if raw.FallbackScreen.Height != nil {
			cfg.FallbackScreen.Height = *raw.FallbackScreen.Height
		}
	}
	if raw.TerminalClasses != nil {
		if len(*raw.TerminalClasses) == 0 {
			return nil, &ValidationError{Path: "terminal_classes", Err: fmt.Errorf("terminal_classes must not be empty")}
		}
		cfg.TerminalClasses = append(ClassList(nil), (*raw.TerminalClasses)...)
	}
	if raw.ClassMatch != nil {
		cfg.ClassMatch = strings.ToLower(strings.TrimSpace(*raw.ClassMatch))
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*raw.LogLevel))
	}

	return cfg, nil
}
