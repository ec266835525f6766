package main

import (
	"github.com/spf13/cobra"

	"github.com/jdmonaco/pouty/console"
)

func hlineCmd() *cobra.Command {
	var (
		length    int
		lineColor string
	)

	cmd := &cobra.Command{
		Use:   "hline",
		Short: "Print a horizontal rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := printer
			if lineColor != "" {
				if _, err := console.Func(lineColor); err != nil {
					return err
				}
				p = p.With(console.InColor(lineColor))
			}
			return p.HLine(length)
		},
	}

	cmd.Flags().IntVar(&length, "length", 80, "Rule length in characters")
	cmd.Flags().StringVar(&lineColor, "color", "", "Color name for the rule (default snow)")

	return cmd
}
