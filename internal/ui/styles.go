package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used for the report stream.
// Data rows are deliberately left unstyled so their bytes stay stable
// for diffing and scripting.

var (
	// Scenario section headers ("== name")
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")) // Purple-ish

	// Column header line
	ColumnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Gray

	// Ratio lines versus the reference implementation
	RatioStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // Cyan/Teal
)
