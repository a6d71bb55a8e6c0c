// Package wrap word-wraps text to a display-column budget.
package wrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// String wraps s so no line exceeds width display columns, breaking at
// spaces. Existing newlines are kept; runs of interior whitespace
// collapse to single spaces; a word wider than the budget stays on its
// own line unbroken. Width <= 0 returns s unchanged.
func String(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, 1)
	current := words[0]
	currentWidth := runewidth.StringWidth(words[0])
	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if currentWidth+1+w <= width {
			current += " " + word
			currentWidth += 1 + w
			continue
		}
		lines = append(lines, current)
		current = word
		currentWidth = w
	}
	return append(lines, current)
}
