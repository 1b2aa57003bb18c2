// SPDX-License-Identifier: MPL-2.0

package converter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type (
	// Styles controls how reports and charts are colored.
	Styles struct {
		// Title styles the heading line above a report or chart.
		Title lipgloss.Style
		// Label styles the field-name column of a report and chart headers.
		Label lipgloss.Style
		// Value styles field values.
		Value lipgloss.Style
		// Border styles the table border.
		Border lipgloss.Style
	}

	// FormatOptions configures Format and FormatChart.
	FormatOptions struct {
		// BinaryWidth is the minimum width of the padded binary value (0 means DefaultBinaryWidth).
		BinaryWidth int
		// Styles overrides DefaultStyles when set.
		Styles *Styles
	}
)

// DefaultStyles returns a muted palette that reads on dark and light backgrounds.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Label:  lipgloss.NewStyle().Bold(true),
		Value:  lipgloss.NewStyle(),
		Border: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}),
	}
}

func (o FormatOptions) styles() Styles {
	if o.Styles != nil {
		return *o.Styles
	}
	return DefaultStyles()
}

func (o FormatOptions) binaryWidth() int {
	if o.BinaryWidth > 0 {
		return o.BinaryWidth
	}
	return DefaultBinaryWidth
}

// Format renders the report for a single conversion: a heading naming the
// character followed by a table of its representations and its kind.
func Format(res Result, opts FormatOptions) string {
	st := opts.styles()

	rows := [][]string{
		{"Character", DisplayRune(res.Character)},
		{"ASCII", strconv.Itoa(res.ASCII)},
		{"Binary", fmt.Sprintf("%s (%s)", res.PaddedBinary(opts.binaryWidth()), res.Binary)},
		{"Hexadecimal", fmt.Sprintf("0x%s (%s)", res.Hexadecimal, res.Hexadecimal)},
		{"Octal", fmt.Sprintf("0o%s (%s)", res.Octal, res.Octal)},
		{"Type", res.Kind().String()},
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return st.Label.Padding(0, 1)
			}
			return st.Value.Padding(0, 1)
		}).
		Rows(rows...)

	title := st.Title.Render(fmt.Sprintf("Conversion Results for: '%s'", DisplayRune(res.Character)))
	return title + "\n" + t.String()
}

// Chart returns one row per code point in [from, to]: the character, and its
// decimal, hexadecimal, octal and binary values. It returns nil when from > to.
func Chart(from, to rune) [][]string {
	if from > to {
		return nil
	}
	rows := make([][]string, 0, int(to-from)+1)
	for r := from; r <= to; r++ {
		res := ConvertRune(r)
		rows = append(rows, []string{
			DisplayRune(r),
			strconv.Itoa(res.ASCII),
			res.Hexadecimal,
			res.Octal,
			res.PaddedBinary(DefaultBinaryWidth),
		})
	}
	return rows
}

// FormatChart renders rows produced by Chart as a table with a header row.
func FormatChart(rows [][]string, opts FormatOptions) string {
	st := opts.styles()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		Headers("Char", "Dec", "Hex", "Oct", "Bin").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Label.Padding(0, 1)
			}
			if col == 0 {
				return st.Value.Padding(0, 1).Align(lipgloss.Center)
			}
			return st.Value.Padding(0, 1).Align(lipgloss.Right)
		}).
		Rows(rows...)

	return t.String()
}

// DisplayRune returns a printable spelling of r. Printable characters
// (including the space) are returned as-is; control and other unprintable
// runes are shown as Go escape sequences such as \n or \x00. Code points
// that are not valid runes, such as surrogates, are shown as \ud800.
func DisplayRune(r rune) string {
	if !utf8.ValidRune(r) {
		if r < 0 || r > unicode.MaxRune {
			return fmt.Sprintf(`\U%08x`, uint32(r))
		}
		return fmt.Sprintf(`\u%04x`, r)
	}
	if unicode.IsPrint(r) {
		return string(r)
	}
	return strings.Trim(strconv.QuoteRune(r), "'")
}
