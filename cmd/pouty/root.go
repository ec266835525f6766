package main

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/jdmonaco/pouty/console"
	"github.com/jdmonaco/pouty/internal/config"
	"github.com/jdmonaco/pouty/internal/env"
)

// cfg and printer are resolved once in the persistent pre-run and shared by
// every subcommand.
var (
	cfg     *config.Config
	printer *console.Printer
)

func rootCmd() *cobra.Command {
	var (
		cfgPath    string
		quiet      bool
		verbose    bool
		logfile    string
		truncate   bool
		timestamps bool
	)

	cmd := &cobra.Command{
		Use:   "pouty",
		Short: "Colorful console output with log mirroring and menubar signaling",
		Long: `pouty renders prefixed, colorized, multi-line console messages, optionally
mirrors them (color-stripped) into a timestamped log file, raises desktop
popup notifications, and signals an AnyBar menubar indicator over UDP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env.Load()

			cfg = config.Default()
			loaded, err := config.Load(cfgPath)
			switch {
			case err == nil:
				cfg = loaded
			case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
				// No run-control file is fine; built-in defaults apply.
			default:
				return err
			}

			console.SetQuietMode(cfg.Quiet || quiet)
			console.SetDebugMode(cfg.Debug || verbose)

			path := cfg.Logfile.Path
			trunc := cfg.Logfile.Truncate
			if logfile != "" {
				path = logfile
				trunc = truncate
			}
			if path != "" {
				// Mirroring is best-effort: an unopenable log file is
				// reported but never blocks console output.
				_ = console.SetOutputFile(path, trunc)
			}
			console.SetTimestamps(cfg.Logfile.Timestamps || timestamps)

			printer = console.New(
				console.WithPrefix(cfg.Prefix),
				console.WithPrefixColor(cfg.PrefixColor),
				console.WithMessageColor(cfg.MessageColor),
			)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "pouty.yaml", "Run-control file path")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress normal and debug output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	cmd.PersistentFlags().StringVar(&logfile, "logfile", "", "Mirror output into this log file")
	cmd.PersistentFlags().BoolVar(&truncate, "truncate", false, "Truncate the log file instead of appending")
	cmd.PersistentFlags().BoolVar(&timestamps, "timestamps", false, "Timestamp each log file record")

	cmd.AddCommand(logCmd())
	cmd.AddCommand(colorsCmd())
	cmd.AddCommand(hlineCmd())
	cmd.AddCommand(anybarCmd())

	return cmd
}
