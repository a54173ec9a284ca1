package texttools

import (
	"regexp"
	"sort"
	"strings"
)

// WordFrequency is one row of a word density report.
type WordFrequency struct {
	Word    string  `json:"word"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// Density counts lowercased words in text, most frequent first. Words with
// equal counts keep their order of first appearance.
func Density(text string) []WordFrequency {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	index := make(map[string]int)
	var out []WordFrequency
	for _, w := range words {
		if i, ok := index[w]; ok {
			out[i].Count++
			continue
		}
		index[w] = len(out)
		out = append(out, WordFrequency{Word: w, Count: 1})
	}

	for i := range out {
		out[i].Percent = float64(out[i].Count) * 100 / float64(len(words))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
