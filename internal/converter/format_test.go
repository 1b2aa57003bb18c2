// SPDX-License-Identifier: MPL-2.0

package converter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	out := Format(ConvertRune('A'), FormatOptions{})

	for _, want := range []string{
		"Conversion Results for: 'A'",
		"Character",
		"ASCII",
		"65",
		"01000001 (1000001)",
		"0x41 (41)",
		"0o101 (101)",
		"uppercase letter",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format output missing %q:\n%s", want, out)
		}
	}

	// Field order is part of the layout.
	labels := []string{"Character", "ASCII", "Binary", "Hexadecimal", "Octal", "Type"}
	last := -1
	for _, l := range labels {
		idx := strings.Index(out, l)
		if idx <= last {
			t.Fatalf("label %q out of order in:\n%s", l, out)
		}
		last = idx
	}

	// Every field is separated from the next by a border row.
	if got := strings.Count(out, "├"); got != len(labels)-1 {
		t.Errorf("expected %d row separators, got %d:\n%s", len(labels)-1, got, out)
	}
}

func TestFormat_BinaryWidth(t *testing.T) {
	t.Parallel()

	out := Format(ConvertRune('5'), FormatOptions{BinaryWidth: 12})
	if !strings.Contains(out, "000000110101 (110101)") {
		t.Errorf("expected 12-digit padded binary, got:\n%s", out)
	}
}

func TestFormat_CustomStyles(t *testing.T) {
	t.Parallel()

	plain := Styles{
		Title:  lipgloss.NewStyle(),
		Label:  lipgloss.NewStyle(),
		Value:  lipgloss.NewStyle(),
		Border: lipgloss.NewStyle(),
	}
	out := Format(ConvertRune('z'), FormatOptions{Styles: &plain})
	if !strings.Contains(out, "0x7A (7A)") || !strings.Contains(out, "lowercase letter") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestFormat_Unprintable(t *testing.T) {
	t.Parallel()

	out := Format(ConvertRune('\n'), FormatOptions{})
	if !strings.Contains(out, `Conversion Results for: '\n'`) {
		t.Errorf("newline should be shown escaped, got:\n%s", out)
	}
	if !strings.Contains(out, "whitespace character") {
		t.Errorf("newline should classify as whitespace, got:\n%s", out)
	}
}

func TestChart(t *testing.T) {
	t.Parallel()

	rows := Chart('A', 'C')
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"A", "65", "41", "101", "01000001"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[2][0] != "C" {
		t.Errorf("last row should be C, got %q", rows[2][0])
	}

	if rows := Chart('z', 'a'); rows != nil {
		t.Errorf("reversed range should return nil, got %d rows", len(rows))
	}
}

func TestFormatChart(t *testing.T) {
	t.Parallel()

	out := FormatChart(Chart('0', '1'), FormatOptions{})
	for _, want := range []string{"Char", "Dec", "Hex", "Oct", "Bin", "48", "00110001"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q:\n%s", want, out)
		}
	}
}

func TestChart_Surrogates(t *testing.T) {
	t.Parallel()

	rows := Chart(0xd7ff, 0xd801)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1][0] != `\ud800` || rows[1][2] != "D800" {
		t.Errorf("surrogate row = %v", rows[1])
	}
	if strings.Contains(FormatChart(rows, FormatOptions{}), "\uFFFD") {
		t.Error("surrogates must not render as the replacement character")
	}
}

func TestDisplayRune(t *testing.T) {
	t.Parallel()

	tests := map[rune]string{
		'A':    "A",
		' ':    " ",
		'\n':   `\n`,
		0:      `\x00`,
		'\x7f': `\x7f`,
		0xd800: `\ud800`,
		0xdfff: `\udfff`,
	}
	for r, want := range tests {
		if got := DisplayRune(r); got != want {
			t.Errorf("DisplayRune(%d) = %q, want %q", r, got, want)
		}
	}
}
