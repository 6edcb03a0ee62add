package config

import "fmt"

// ExplainPaths lists every path Explain understands, in file order.
var ExplainPaths = []string{
	"gap",
	"layout",
	"pacing_delay_ms",
	"fallback_screen.width",
	"fallback_screen.height",
	"terminal_classes",
	"class_match",
	"log_level",
}

// Explain returns the effective value at path and where it was set.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	return value, res.SourceOf(path), nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch path {
	case "gap":
		return cfg.Gap, nil
	case "layout":
		return cfg.Layout, nil
	case "pacing_delay_ms":
		return cfg.PacingDelayMS, nil
	case "fallback_screen":
		return cfg.FallbackScreen, nil
	case "fallback_screen.width":
		return cfg.FallbackScreen.Width, nil
	case "fallback_screen.height":
		return cfg.FallbackScreen.Height, nil
	case "terminal_classes":
		return []string(cfg.TerminalClasses), nil
	case "class_match":
		return cfg.ClassMatch, nil
	case "log_level":
		return cfg.LogLevel, nil
	}
	return nil, fmt.Errorf("unknown config path %q", path)
}
