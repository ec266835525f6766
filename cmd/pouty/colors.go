package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/jdmonaco/pouty/anybar"
	"github.com/jdmonaco/pouty/console"
)

func colorsCmd() *cobra.Command {
	var swatches bool

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the console palette and menubar color tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if swatches {
				console.Swatches(os.Stdout)
				return nil
			}

			headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
			tbl := table.New("Color", "Sample")
			tbl.WithHeaderFormatter(headerFmt)

			for _, name := range console.Names() {
				sample, err := console.Colorize(name, strings.Repeat("■", 16))
				if err != nil {
					return err
				}
				tbl.AddRow(name, sample)
			}
			tbl.Print()

			return printer.Msgf("AnyBar tokens: %s", strings.Join(anybar.Colors(), ", "))
		},
	}

	cmd.Flags().BoolVar(&swatches, "swatches", false, "Print full-width swatch rows instead of a table")

	return cmd
}
