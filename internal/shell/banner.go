// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerWidth = 60

// Styles colors the shell's own output. The zero value renders plain text.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// Banner renders the title block shown at startup, after clear, and on help.
func Banner(st Styles) string {
	heavy := st.Muted.Render(strings.Repeat("=", bannerWidth))
	light := st.Muted.Render(strings.Repeat("-", bannerWidth))

	var sb strings.Builder
	sb.WriteString(heavy + "\n")
	sb.WriteString(st.Title.Render("        CHARACTER/DIGIT CONVERTER") + "\n")
	sb.WriteString(heavy + "\n")
	sb.WriteString("Convert any letter or digit to:\n")
	sb.WriteString("• Binary   • Hexadecimal   • Octal   • ASCII\n")
	sb.WriteString(light + "\n")
	sb.WriteString("Commands:\n")
	sb.WriteString("• Type any character or digit to convert\n")
	sb.WriteString("• 'clear' or 'c' - Clear screen\n")
	sb.WriteString("• 'help' or 'h' - Show this help\n")
	sb.WriteString("• 'quit' or 'q' - Exit program\n")
	sb.WriteString("• Ctrl+C - Quick exit\n")
	sb.WriteString(heavy + "\n")
	return sb.String()
}
