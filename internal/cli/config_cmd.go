package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/1broseidon/termgrid/internal/config"
)

func newConfigCmd(opts *rootOptions, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the termgrid configuration",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newConfigPrintCmd(opts, stdout))
	cmd.AddCommand(newConfigValidateCmd(opts, stdout))
	cmd.AddCommand(newConfigExplainCmd(opts, stdout))
	cmd.AddCommand(newConfigInitCmd(opts, stdout))
	return cmd
}

func newConfigPrintCmd(opts *rootOptions, stdout io.Writer) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration as YAML",
		Long: dedent.Dedent(`
			Print the configuration termgrid would run with: the config file
			merged over the built-in defaults. With --defaults, print only the
			built-in defaults; redirect the output to start a config file.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			source := "defaults"
			if !defaults {
				res, err := loadConfig(cmd, opts)
				if err != nil {
					return err
				}
				cfg = res.Config
				if res.File != "" {
					source = res.File
				}
			}

			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprintf(stdout, "# source: %s\n", source)
			_, err = stdout.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "print the built-in defaults only")
	return cmd
}

func newConfigValidateCmd(opts *rootOptions, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file for errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if res.File == "" {
				fmt.Fprintln(stdout, "No config file found, using defaults")
				return nil
			}
			fmt.Fprintf(stdout, "Config OK: %s\n", res.File)
			return nil
		},
	}
}

func newConfigExplainCmd(opts *rootOptions, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [path]",
		Short: "Show where each configuration value comes from",
		Long: dedent.Dedent(`
			Print the effective value of a configuration key together with its
			source: the file, line and column that set it, or "default". With
			no path, every key is listed.`),
		Example: dedent.Dedent(`
			  termgrid config explain
			  termgrid config explain fallback_screen.width`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			paths := config.ExplainPaths
			if len(args) == 1 {
				paths = args
			}
			for _, path := range paths {
				value, src, err := config.Explain(res, path)
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "%s = %v  # %s\n", path, value, src)
			}
			return nil
		},
	}
}

func newConfigInitCmd(opts *rootOptions, stdout io.Writer) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in defaults to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().SaveTo(path); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("wrote config", "path", path)
			fmt.Fprintf(stdout, "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
