package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/1broseidon/termgrid/internal/config"
	"github.com/1broseidon/termgrid/internal/platform"
	"github.com/1broseidon/termgrid/internal/tiling"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the termgrid CLI.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr, openBackend).ExecuteContext(context.Background())
}

type rootOptions struct {
	configPath string
	verbose    bool
	simulate   bool

	horizontal bool
	gap        int
	list       bool
	hide       bool
	jsonOut    bool
}

func newRootCmd(stdout, stderr io.Writer, open backendOpener) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "termgrid [keyword]",
		Short: "Tile the terminal windows whose title contains a keyword",
		Long: dedent.Dedent(`
			termgrid finds the visible terminal windows whose title contains a
			keyword (case-insensitive) and arranges them into a grid that fills
			the screen.

			The default vertical layout uses up to four tall columns filled top
			to bottom, with window heights kept between 200 and 600 pixels. The
			horizontal layout uses a near-square grid filled left to right, with
			window widths kept between 300 and 800 pixels.

			A keyword that collides with a subcommand name can be passed after
			"--", e.g. "termgrid -- config".`),
		Example: dedent.Dedent(`
			  termgrid gas                 # tile terminals with "gas" in the title
			  termgrid gas --horizontal    # near-square grid instead of columns
			  termgrid gcc --gap 10        # 10px between windows
			  termgrid g --hide            # minimize every matching terminal
			  termgrid --list              # list all terminal windows
			  termgrid gas --simulate      # dry run against sample windows
			  termgrid pick                # choose the keyword interactively`),
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts, stdout, open)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate(fmt.Sprintf("termgrid %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/termgrid/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&opts.simulate, "simulate", false, "run against sample in-memory windows instead of X11")

	flags := root.Flags()
	flags.BoolVar(&opts.horizontal, "horizontal", false, "use a near-square grid filled row by row")
	flags.IntVar(&opts.gap, "gap", config.DefaultGap, "pixel gap between windows (default from config)")
	flags.BoolVar(&opts.list, "list", false, "list all terminal windows without tiling")
	flags.BoolVar(&opts.hide, "hide", false, "minimize the matching windows instead of tiling")
	flags.BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")

	root.AddCommand(newConfigCmd(opts, stdout))
	root.AddCommand(newMCPCmd(opts, open))
	root.AddCommand(newPlanCmd(opts, stdout))
	root.AddCommand(newPickCmd(opts, stdout, open))

	return root
}

// configPath returns the --config file or the default location.
func configPath(opts *rootOptions) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.DefaultConfigPath()
}

// loadConfig reads the --config file (or the default path) and applies its
// log level unless --verbose is set.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.LoadResult, error) {
	path, err := configPath(opts)
	if err != nil {
		return nil, err
	}

	res, err := config.LoadFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := loggerFromContext(cmd.Context())
	if !opts.verbose {
		logger.SetLevel(levelFromConfig(res.Config.LogLevel))
	}
	if res.File != "" {
		logger.Debug("loaded config", "path", res.File)
	}
	return res, nil
}

func newTiler(cmd *cobra.Command, ws platform.WindowSystem, cfg *config.Config) *tiling.Tiler {
	return tiling.NewTiler(ws, cfg.Detector(), tiling.Options{
		PacingDelay:    cfg.PacingDelay(),
		FallbackScreen: cfg.FallbackScreenSize(),
		Logger:         slogFromContext(cmd.Context()),
	})
}

func runRoot(cmd *cobra.Command, args []string, opts *rootOptions, stdout io.Writer, open backendOpener) error {
	keyword := ""
	if len(args) > 0 {
		keyword = strings.TrimSpace(args[0])
	}
	if keyword == "" && !opts.list {
		return cmd.Help()
	}

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

	tiler := newTiler(cmd, ws, cfg)
	width := outputWidth(stdout)

	if opts.list {
		windows, warnings := tiler.List()
		if opts.jsonOut {
			return writeJSON(stdout, listReport{Windows: windows, Warnings: warnings})
		}
		printWindows(stdout, windows, width)
		return nil
	}

	var summary *tiling.Summary
	if opts.hide {
		summary = tiler.Hide(keyword)
	} else {
		req := tiling.Request{
			Keyword:    keyword,
			Preference: cfg.Preference(),
			Gap:        cfg.Gap,
		}
		if opts.horizontal {
			req.Preference = tiling.Horizontal
		}
		if cmd.Flags().Changed("gap") {
			req.Gap = opts.gap
		}
		summary, err = tiler.Tile(req)
		if err != nil {
			return err
		}
	}

	if opts.jsonOut {
		return writeJSON(stdout, summary.Report())
	}
	printSummary(stdout, summary, width)
	return nil
}
