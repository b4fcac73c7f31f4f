package main

import (
	"fmt"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"benchcmp/internal/benchmark"
	"benchcmp/internal/config"
)

func runReport(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "usage: benchcmp <json...>")
		return errUsage
	}

	// All files load before any report output, so a bad file never
	// leaves a partial report behind.
	records, err := benchmark.LoadFiles(args)
	if err != nil {
		return err
	}
	slog.Debug("loaded records", "files", len(args), "records", len(records))

	order, err := config.Order()
	if err != nil {
		return err
	}
	reference, err := config.Reference()
	if err != nil {
		return err
	}

	colorMode, _ := cmd.Flags().GetString("color")
	color, err := resolveColor(colorMode)
	if err != nil {
		return err
	}

	reporter := &benchmark.Reporter{Order: order, Reference: reference, Color: color}
	reporter.Write(cmd.OutOrStdout(), records)
	return nil
}

// resolveColor maps the --color flag to a decision, probing the terminal
// color profile in auto mode.
func resolveColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return termenv.ColorProfile() != termenv.Ascii, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (want auto, always or never)", mode)
	}
}
