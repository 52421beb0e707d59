package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	green = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	red   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	gray  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

var rule = strings.Repeat("=", 50)

// section prints a ruled heading followed by optional detail lines.
func section(w io.Writer, heading string, lines ...string) {
	fmt.Fprintf(w, "\n%s\n%s\n", rule, title.Render(heading))
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w, rule)
}
