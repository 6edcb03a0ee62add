package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClassList supports either:
//
//	terminal_classes: kitty
//
// or:
//
//	terminal_classes:
//	  - kitty
//	  - Alacritty
type ClassList []string

func (l *ClassList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("terminal_classes must be a string or list of strings")
		}
		class := strings.TrimSpace(value.Value)
		if class == "" {
			return fmt.Errorf("terminal_classes entries must not be empty")
		}
		*l = ClassList{class}
		return nil
	case yaml.SequenceNode:
		out := make(ClassList, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("terminal_classes entries must be strings")
			}
			class := strings.TrimSpace(item.Value)
			if class == "" {
				return fmt.Errorf("terminal_classes entries must not be empty")
			}
			out = append(out, class)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("terminal_classes must be a string or list of strings")
	}
}

type RawScreen struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

// RawConfig mirrors Config with every field optional, so a file only
// overrides what it sets.
type RawConfig struct {
	Gap             *int       `yaml:"gap"`
	Layout          *string    `yaml:"layout"`
	PacingDelayMS   *int       `yaml:"pacing_delay_ms"`
	FallbackScreen  *RawScreen `yaml:"fallback_screen"`
	TerminalClasses *ClassList `yaml:"terminal_classes"`
	ClassMatch      *string    `yaml:"class_match"`
	LogLevel        *string    `yaml:"log_level"`
}

func (r RawConfig) merge(over RawConfig) RawConfig {
	out := r
	if over.Gap != nil {
		out.Gap = over.Gap
	}
	if over.Layout != nil {
		out.Layout = over.Layout
	}
	if over.PacingDelayMS != nil {
		out.PacingDelayMS = over.PacingDelayMS
	}
	if over.FallbackScreen != nil {
		if out.FallbackScreen == nil {
			out.FallbackScreen = &RawScreen{}
		}
		screen := *out.FallbackScreen
		if over.FallbackScreen.Width != nil {
			screen.Width = over.FallbackScreen.Width
		}
		if over.FallbackScreen.Height != nil {
			screen.Height = over.FallbackScreen.Height
		}
		out.FallbackScreen = &screen
	}
	if over.TerminalClasses != nil {
		out.TerminalClasses = over.TerminalClasses
	}
	if over.ClassMatch != nil {
		out.ClassMatch = over.ClassMatch
	}
	if over.LogLevel != nil {
		out.LogLevel = over.LogLevel
	}
	return out
}
