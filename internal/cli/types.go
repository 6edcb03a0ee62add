package cli

import "github.com/1broseidon/termgrid/internal/platform"

// listReport is the JSON form of --list.
type listReport struct {
	Windows  []platform.Window `json:"windows"`
	Warnings []string          `json:"warnings,omitempty"`
}
