// Package text lays out card text: greedy word wrapping with truncation,
// XML escaping, and compact number formatting.
package text

import "strings"

// Ellipsis is appended to the last line when text is truncated.
const Ellipsis = "..."

// Measurer reports the rendered pixel width of a string at a font size.
// *fonts.Metrics satisfies it.
type Measurer interface {
	Measure(text string, size float64) int
}

// Wrap splits text into at most maxLines lines no wider than maxWidth pixels.
//
// Lines are filled greedily word by word. Once maxLines-1 lines are closed the
// final line keeps taking words while they fit; the first word that does not
// fit stops consumption and the final line gets an Ellipsis. A single word
// wider than maxWidth is placed on its own line rather than split.
// Whitespace-only text yields no lines.
func Wrap(m Measurer, text string, size float64, maxWidth, maxLines int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || maxLines <= 0 {
		return nil
	}

	fits := func(s string) bool { return m.Measure(s, size) <= maxWidth }

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		if len(lines) == maxLines-1 {
			if current != "" && !fits(candidate) {
				return append(lines, current+Ellipsis)
			}
			current = candidate
			continue
		}

		if current == "" || fits(candidate) {
			current = candidate
			continue
		}

		lines = append(lines, current)
		current = word
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
