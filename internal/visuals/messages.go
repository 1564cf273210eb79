package visuals

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const warnPrefix = "[Warn] "

// Warnify prefixes every line of msg with "[Warn] " and frames the block
// with dashed rules as wide as the longest line.
func Warnify(msg string) string {
	lines := strings.Split(msg, "\n")
	width := 0
	for i, l := range lines {
		lines[i] = warnPrefix + l
		if w := lipgloss.Width(lines[i]); w > width {
			width = w
		}
	}
	hr := warnPrefix + strings.Repeat("-", width-len(warnPrefix))

	out := make([]string, 0, len(lines)+2)
	out = append(out, hr)
	out = append(out, lines...)
	out = append(out, hr)
	return strings.Join(out, "\n")
}

// Warn writes msg to w as a Warnify banner, colored when w is a color terminal.
func Warn(w io.Writer, msg string) error {
	style := warnStyle(lipgloss.NewRenderer(w))
	lines := strings.Split(Warnify(msg), "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
