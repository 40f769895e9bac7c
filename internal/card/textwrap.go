package card

import (
	"strings"

	"golang.org/x/image/font"
)

// Wrap splits text into lines whose rendered width fits maxWidth pixels when
// drawn with face. Greedy word wrap: a word that would overflow the current
// line starts the next one. A single word wider than maxWidth is emitted as
// its own line, unmodified. Callers cap how many lines they actually draw.
func Wrap(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)

	var lines []string
	var current []string

	for _, word := range words {
		current = append(current, word)

		width := font.MeasureString(face, strings.Join(current, " ")).Ceil()
		if width <= maxWidth {
			continue
		}

		if len(current) == 1 {
			// Over-wide single word: no hyphenation, no truncation.
			lines = append(lines, current[0])
			current = nil
			continue
		}

		current = current[:len(current)-1]
		lines = append(lines, strings.Join(current, " "))
		current = []string{word}
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return lines
}
