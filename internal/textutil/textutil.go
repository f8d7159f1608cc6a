// Package textutil provides the small text helpers shared by the scale
// sources: comment-line wrapping for citations and filename sanitizing.
package textutil

import "strings"

// DefaultWrapWidth is the column citations are wrapped at inside scl
// comment blocks.
const DefaultWrapWidth = 70

// Wrap greedily breaks text into lines of at most width characters,
// splitting only on whitespace. Words longer than width get a line of
// their own.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		width = DefaultWrapWidth
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// filenameReplacer maps characters that are unsafe or awkward in scl
// filenames onto underscores.
var filenameReplacer = strings.NewReplacer(
	" ", "_",
	"/", "_",
	"'", "_",
)

// SanitizeFilename makes a catalog-derived name safe for the output tree.
func SanitizeFilename(name string) string {
	return filenameReplacer.Replace(name)
}
