// Package texttools holds the small text utilities of the toolbox: counters,
// cleaners and transformers. Every function is pure.
package texttools

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/4tbox/toolbox/internal/lines"
)

// ReadingWPM is the reading speed used for reading time estimates.
const ReadingWPM = 200

// Stats describes a block of text.
type Stats struct {
	Words          int     `json:"words"`
	Characters     int     `json:"characters"`
	Lines          int     `json:"lines"`
	AvgWordLength  float64 `json:"avg_word_length"`
	ReadingSeconds int     `json:"reading_seconds"`
}

// Count computes word, character and line statistics for text.
func Count(text string) Stats {
	words := strings.Fields(text)

	s := Stats{
		Words:      len(words),
		Characters: utf8.RuneCountInString(text),
		Lines:      lines.Count(text),
	}
	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += utf8.RuneCountInString(w)
		}
		s.AvgWordLength = float64(total) / float64(len(words))
		s.ReadingSeconds = int(math.Ceil(float64(len(words)) * 60 / ReadingWPM))
	}
	return s
}

// Reverse returns text with its characters in reverse order.
func Reverse(text string) string {
	r := []rune(text)
	slices.Reverse(r)
	return string(r)
}
