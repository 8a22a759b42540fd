package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/uriparse/config"
	"github.com/ghettovoice/uriparse/internal/log"
)

// app holds the state shared by the subcommands.
type app struct {
	// Global flags
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.Def}

	rootCmd := &cobra.Command{
		Use:   "uriparse",
		Short: "Parse URIs into their components",
		Long: `uriparse splits URIs into scheme, authority, path segments,
query parameters and fragment, and prints the result as text, YAML or JSON.

Repeated query parameters are handled according to the query mode:
  - last:      the last value wins
  - colon:     values are joined with ","
  - array:     values are merged into arrays, "a[]" and "a[key]" names are decoded
  - semicolon: ";" also separates parameters (last mode only)`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newParseCmd(a), newVersionCmd())
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())
	a.logger.Debug("configuration loaded",
		"path", a.cfgFile,
		"query_mode", cfg.QueryMode,
		"default_scheme", cfg.DefaultScheme,
	)
	return nil
}
