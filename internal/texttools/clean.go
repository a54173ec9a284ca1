package texttools

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/4tbox/toolbox/internal/lines"
)

// DedupeOptions controls RemoveDuplicates.
type DedupeOptions struct {
	CaseSensitive bool `json:"case_sensitive"`
	IgnoreEmpty   bool `json:"ignore_empty"`
	TrimLines     bool `json:"trim_lines"`
	Sort          bool `json:"sort"`
}

// DefaultDedupeOptions mirrors the defaults of the remove-duplicates page.
func DefaultDedupeOptions() DedupeOptions {
	return DedupeOptions{CaseSensitive: true, IgnoreEmpty: true, TrimLines: true}
}

// DedupeResult is the output of RemoveDuplicates.
type DedupeResult struct {
	Output   string `json:"output"`
	Original int    `json:"original"`
	Unique   int    `json:"unique"`
	Removed  int    `json:"removed"`
}

// RemoveDuplicates keeps the first occurrence of every line. With
// CaseSensitive unset, lines differing only in case count as duplicates.
func RemoveDuplicates(text string, opts DedupeOptions) DedupeResult {
	raw := strings.Split(text, "\n")

	seen := make(map[string]bool, len(raw))
	var out []string
	for _, line := range raw {
		if opts.TrimLines {
			line = strings.TrimSpace(line)
		}
		if opts.IgnoreEmpty && line == "" {
			continue
		}
		key := line
		if !opts.CaseSensitive {
			key = strings.ToLower(line)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, line)
	}

	if opts.Sort {
		c := collate.New(language.Und)
		sort.SliceStable(out, func(i, j int) bool { return c.CompareString(out[i], out[j]) < 0 })
	}

	return DedupeResult{
		Output:   strings.Join(out, "\n"),
		Original: len(raw),
		Unique:   len(out),
		Removed:  len(raw) - len(out),
	}
}

// WhitespaceOptions controls CleanWhitespace.
type WhitespaceOptions struct {
	ConvertTabs      bool `json:"convert_tabs"`
	TabSize          int  `json:"tab_size"`
	TrimLines        bool `json:"trim_lines"`
	CollapseSpaces   bool `json:"collapse_spaces"`
	RemoveEmptyLines bool `json:"remove_empty_lines"`
}

// DefaultWhitespaceOptions mirrors the defaults of the whitespace remover page.
func DefaultWhitespaceOptions() WhitespaceOptions {
	return WhitespaceOptions{ConvertTabs: true, TabSize: DefaultTabSize, TrimLines: true, CollapseSpaces: true}
}

// WhitespaceResult is the output of CleanWhitespace.
type WhitespaceResult struct {
	Output            string `json:"output"`
	OriginalLength    int    `json:"original_length"`
	CleanLength       int    `json:"clean_length"`
	WhitespaceRemoved int    `json:"whitespace_removed"`
}

var multiSpace = regexp.MustCompile(` {2,}`)

// Tab widths accepted by CleanWhitespace. Zero selects DefaultTabSize.
const (
	DefaultTabSize = 4
	MinTabSize     = 2
	MaxTabSize     = 8
)

func tabWidth(size int) int {
	if size == 0 {
		return DefaultTabSize
	}
	return min(max(size, MinTabSize), MaxTabSize)
}

// CleanWhitespace normalizes tabs, spaces and empty lines. Line endings are
// normalized to "\n".
func CleanWhitespace(text string, opts WhitespaceOptions) WhitespaceResult {
	before := countSpace(text)
	res := WhitespaceResult{OriginalLength: len([]rune(text))}

	if opts.ConvertTabs {
		text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth(opts.TabSize)))
	}

	var kept []string
	for _, line := range lines.Split(text) {
		if opts.TrimLines {
			line = strings.TrimSpace(line)
		}
		if opts.CollapseSpaces {
			line = multiSpace.ReplaceAllString(line, " ")
		}
		if opts.RemoveEmptyLines && strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}

	res.Output = strings.Join(kept, "\n")
	res.CleanLength = len([]rune(res.Output))
	res.WhitespaceRemoved = before - countSpace(res.Output)
	return res
}

func countSpace(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
