package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/1broseidon/termgrid/internal/platform"
	"github.com/1broseidon/termgrid/internal/tiling"
)

func newPlanCmd(opts *rootOptions, stdout io.Writer) *cobra.Command {
	var (
		horizontal bool
		gap        int
		screen     string
	)

	cmd := &cobra.Command{
		Use:   "plan <count>...",
		Short: "Preview the grid for a number of windows without touching any",
		Example: dedent.Dedent(`
			  termgrid plan 6
			  termgrid plan 3 5 7 10 --horizontal --screen 2560x1440`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			cfg := res.Config

			pref := cfg.Preference()
			if horizontal {
				pref = tiling.Horizontal
			}
			if !cmd.Flags().Changed("gap") {
				gap = cfg.Gap
			}
			size := cfg.FallbackScreenSize()
			if screen != "" {
				if size, err = parseScreen(screen); err != nil {
					return err
				}
			}

			fmt.Fprintf(stdout, "%s layout on %dx%d, gap %d\n", pref, size.Width, size.Height, gap)
			for _, arg := range args {
				total, err := strconv.Atoi(arg)
				if err != nil || total < 0 {
					return fmt.Errorf("invalid window count %q", arg)
				}
				plan := tiling.Plan(total, pref)
				rects, err := tiling.Assign(plan, size, gap, pref)
				if err != nil {
					return err
				}
				printPlan(stdout, total, plan, rects)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "preview the horizontal layout")
	cmd.Flags().IntVar(&gap, "gap", 0, "pixel gap between windows (default from config)")
	cmd.Flags().StringVar(&screen, "screen", "", "screen size as WIDTHxHEIGHT (default from config fallback_screen)")
	return cmd
}

// parseScreen parses "WIDTHxHEIGHT".
func parseScreen(s string) (platform.ScreenSize, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return platform.ScreenSize{}, fmt.Errorf("invalid screen size %q (want WIDTHxHEIGHT)", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return platform.ScreenSize{}, fmt.Errorf("invalid screen width in %q", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return platform.ScreenSize{}, fmt.Errorf("invalid screen height in %q", s)
	}
	return platform.ScreenSize{Width: width, Height: height}, nil
}
