package mcp

import "github.com/1broseidon/termgrid/internal/tiling"

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes a single terminal window.
type WindowInfo struct {
	ID    uint32 `json:"id"`
	Title string `json:"title"`
	Class string `json:"class"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows  []WindowInfo `json:"windows"`
	Warnings []string     `json:"warnings,omitempty"`
}

// TileWindowsInput is the input for the tile_windows tool.
type TileWindowsInput struct {
	Keyword    string `json:"keyword" jsonschema:"required,Case-insensitive substring of the terminal window titles to tile"`
	Horizontal *bool  `json:"horizontal,omitempty" jsonschema:"When true, use a near-square grid filled row by row instead of tall columns (default: configured layout)"`
	Gap        *int   `json:"gap,omitempty" jsonschema:"Pixel gap between windows and around the screen edge (default: configured gap)"`
}

// HideWindowsInput is the input for the hide_windows tool.
type HideWindowsInput struct {
	Keyword string `json:"keyword" jsonschema:"required,Case-insensitive substring of the terminal window titles to minimize"`
}

// RunOutput is the output for the tile_windows and hide_windows tools.
type RunOutput = tiling.Report
