package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/1broseidon/termgrid/internal/tiling"
	"github.com/1broseidon/termgrid/internal/tui"
)

func newPickCmd(opts *rootOptions, stdout io.Writer, open backendOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose the keyword interactively with a live grid preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			cfg := res.Config

			ws, release, err := open(opts.simulate, cfg)
			if err != nil {
				return fmt.Errorf("failed to open window system: %w", err)
			}
			defer release()

			sel, err := tui.Run(ws, cfg.Detector(), tui.Options{
				Preference:     cfg.Preference(),
				Gap:            cfg.Gap,
				FallbackScreen: cfg.FallbackScreenSize(),
			})
			if err != nil {
				return err
			}

			tiler := newTiler(cmd, ws, cfg)
			var summary *tiling.Summary
			switch sel.Action {
			case tui.ActionTile:
				summary, err = tiler.Tile(tiling.Request{Keyword: sel.Keyword, Preference: sel.Preference, Gap: cfg.Gap})
				if err != nil {
					return err
				}
			case tui.ActionHide:
				summary = tiler.Hide(sel.Keyword)
			default:
				return nil
			}
			printSummary(stdout, summary, outputWidth(stdout))
			return nil
		},
	}
}
