package devtools

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

const (
	// MaxMatches bounds the matches returned for a global pattern.
	MaxMatches   = 1000
	matchTimeout = time.Second
)

// RegexGroup is one capture group of a match.
type RegexGroup struct {
	Name    string `json:"name"`
	Text    string `json:"text"`
	Index   int    `json:"index"`
	Matched bool   `json:"matched"`
}

// RegexMatch is one match. Index and Length count runes.
type RegexMatch struct {
	Index  int          `json:"index"`
	Length int          `json:"length"`
	Text   string       `json:"text"`
	Groups []RegexGroup `json:"groups,omitempty"`
}

// RegexResult lists the matches of a pattern against a text.
type RegexResult struct {
	Matches   []RegexMatch `json:"matches"`
	Truncated bool         `json:"truncated"`
}

// TestRegex runs pattern against text. flags takes the JavaScript letters
// g (all matches), i (ignore case), m (multiline) and s (dot matches newline).
func TestRegex(pattern, flags, text string) (*RegexResult, error) {
	var (
		opts   regexp2.RegexOptions
		global bool
	)
	for _, f := range flags {
		switch f {
		case 'g':
			global = true
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		default:
			return nil, fmt.Errorf("unsupported flag %q", f)
		}
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}
	re.MatchTimeout = matchTimeout

	res := &RegexResult{Matches: []RegexMatch{}}
	m, err := re.FindStringMatch(text)
	for m != nil && err == nil {
		if len(res.Matches) == MaxMatches {
			res.Truncated = true
			break
		}
		res.Matches = append(res.Matches, toMatch(m))
		if !global {
			break
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	return res, nil
}

func toMatch(m *regexp2.Match) RegexMatch {
	out := RegexMatch{Index: m.Index, Length: m.Length, Text: m.String()}
	for _, g := range m.Groups()[1:] {
		out.Groups = append(out.Groups, RegexGroup{
			Name:    g.Name,
			Text:    g.String(),
			Index:   g.Index,
			Matched: len(g.Captures) > 0,
		})
	}
	return out
}
