// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/biggaero/converter/internal/converter"
	"github.com/biggaero/converter/internal/shell"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - shared colors for consistent theming across all CLI output.
// Each color has a light and a dark variant; lipgloss picks one based on the
// detected (or configured) terminal background.
var (
	// ColorPrimary is purple - used for titles and report headings.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#7C3AED"}

	// ColorMuted is gray - used for rules, borders and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#6B7280"}

	// ColorSuccess is green - used for success states and converted values.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#10B981"}

	// ColorError is red - used for errors.
	ColorError = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"}

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}

	// ColorHighlight is blue - used for field labels and keys.
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#3B82F6"}
)

// Base styles built from the color palette.
var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for keys, labels, and command names.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// reportStyles returns the palette applied to conversion reports and charts.
func reportStyles() *converter.Styles {
	return &converter.Styles{
		Title:  TitleStyle,
		Label:  CmdStyle.Bold(true),
		Value:  SuccessStyle,
		Border: SubtitleStyle,
	}
}

// shellStyles returns the palette applied to the banner and shell messages.
func shellStyles() shell.Styles {
	return shell.Styles{
		Title:   TitleStyle,
		Muted:   SubtitleStyle,
		Error:   ErrorStyle,
		Success: SuccessStyle,
	}
}
