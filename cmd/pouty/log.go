package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdmonaco/pouty/console"
)

func logCmd() *cobra.Command {
	var (
		prefix      string
		prefixColor string
		msgColor    string
		asError     bool
		asWarning   bool
		asDebug     bool
		popup       bool
		hidePrefix  bool
	)

	cmd := &cobra.Command{
		Use:   "log [message...]",
		Short: "Print a prefixed, colorized message",
		Long: `Print a message through the console pipeline: prefix and color resolution,
multi-line indentation alignment, log file mirroring, and an optional desktop
popup notification.

Example:
  pouty log --prefix Train "epoch 3 complete"
  pouty log --error "disk full"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{prefixColor, msgColor} {
				if name != "" {
					if _, err := console.Func(name); err != nil {
						return err
					}
				}
			}

			p := printer
			if prefixColor != "" || msgColor != "" {
				p = console.New(
					console.WithPrefix(cfg.Prefix),
					console.WithPrefixColor(firstNonEmpty(prefixColor, cfg.PrefixColor)),
					console.WithMessageColor(firstNonEmpty(msgColor, cfg.MessageColor)),
				)
			}

			var opts []console.CallOption
			if prefix != "" {
				opts = append(opts, console.Prefix(prefix))
			}
			if hidePrefix {
				opts = append(opts, console.HidePrefix())
			}
			if popup {
				opts = append(opts, console.Popup())
			}
			p = p.With(opts...)

			msg := strings.Join(args, " ")
			switch {
			case asError:
				return p.Errorf("%s", msg)
			case asWarning:
				return p.Warnf("%s", msg)
			case asDebug:
				return p.Debugf("%s", msg)
			default:
				return p.Msgf("%s", msg)
			}
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Override the default prefix")
	cmd.Flags().StringVar(&prefixColor, "prefix-color", "", "Color name for the prefix")
	cmd.Flags().StringVar(&msgColor, "color", "", "Color name for the message")
	cmd.Flags().BoolVar(&asError, "error", false, "Classify as an error (red, stderr, shown under --quiet)")
	cmd.Flags().BoolVar(&asWarning, "warning", false, "Classify as a warning (orange, stderr, shown under --quiet)")
	cmd.Flags().BoolVar(&asDebug, "debug", false, "Classify as debug (suppressed unless --verbose)")
	cmd.Flags().BoolVar(&popup, "popup", false, "Also raise a desktop notification")
	cmd.Flags().BoolVar(&hidePrefix, "hide-prefix", false, "Indent as if prefixed, but render the prefix blank")

	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
