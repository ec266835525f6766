package main

import (
	"github.com/spf13/cobra"

	"github.com/jdmonaco/pouty/anybar"
)

func anybarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anybar",
		Short: "Signal an AnyBar menubar indicator over UDP",
		Long: `Discover or start the AnyBar menubar application and change its displayed
color by sending UTF-8 color tokens over UDP. On hosts without AnyBar these
commands warn and do nothing.`,
	}

	cmd.AddCommand(anybarStartCmd())
	cmd.AddCommand(anybarSetCmd())
	cmd.AddCommand(anybarToggleCmd())
	cmd.AddCommand(anybarQuitCmd())
	cmd.AddCommand(anybarQuitAllCmd())

	return cmd
}

func anybarStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start (or adopt) an AnyBar instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := clientOptions()
			a := anybar.New(opts...)
			if cfg.AnyBar.StartColor != "" {
				return a.SetColor(cfg.AnyBar.StartColor)
			}
			return nil
		},
	}
}

func anybarSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <color>",
		Short: "Set the indicator color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := anybar.New(clientOptions()...)
			return a.SetColor(args[0])
		},
	}
}

func anybarToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <colorA> <colorB>",
		Short: "Toggle the most recent instance between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			anybar.New(clientOptions()...)
			return anybar.Toggle(args[0], args[1])
		},
	}
}

func anybarQuitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quit",
		Short: "Quit the AnyBar instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := anybar.New(clientOptions()...)
			a.Quit()
			return nil
		},
	}
}

func anybarQuitAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quit-all",
		Short: "Quit every running AnyBar instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return anybar.QuitAll()
		},
	}
}

// clientOptions maps the run-control anybar section onto client options. An
// explicit port skips process discovery entirely.
func clientOptions() []anybar.Option {
	var opts []anybar.Option
	if cfg.AnyBar.Port != 0 {
		opts = append(opts, anybar.WithPort(cfg.AnyBar.Port))
	}
	if cfg.AnyBar.StartColor != "" {
		opts = append(opts, anybar.WithColor(cfg.AnyBar.StartColor))
	}
	return opts
}
