package texttools

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMode selects a ConvertCase transformation.
type CaseMode string

const (
	CaseLower    CaseMode = "lower"
	CaseUpper    CaseMode = "upper"
	CaseTitle    CaseMode = "title"
	CaseSentence CaseMode = "sentence"
	CaseSnake    CaseMode = "snake"
	CaseKebab    CaseMode = "kebab"
	CaseCamel    CaseMode = "camel"
	CasePascal   CaseMode = "pascal"
)

// ConvertCase rewrites text in the requested case.
func ConvertCase(text string, mode CaseMode) (string, error) {
	switch mode {
	case CaseLower:
		return cases.Lower(language.Und).String(text), nil
	case CaseUpper:
		return cases.Upper(language.Und).String(text), nil
	case CaseTitle:
		return cases.Title(language.Und).String(text), nil
	case CaseSentence:
		return sentenceCase(text), nil
	case CaseSnake:
		return strings.Join(lowerWords(text), "_"), nil
	case CaseKebab:
		return strings.Join(lowerWords(text), "-"), nil
	case CaseCamel, CasePascal:
		title := cases.Title(language.Und)
		words := lowerWords(text)
		for i, w := range words {
			if i == 0 && mode == CaseCamel {
				continue
			}
			words[i] = title.String(w)
		}
		return strings.Join(words, ""), nil
	default:
		return "", fmt.Errorf("unknown case mode %q", mode)
	}
}

// sentenceCase lowercases text and capitalizes the first letter of each sentence.
func sentenceCase(text string) string {
	runes := []rune(strings.ToLower(text))
	capitalize := true
	for i, r := range runes {
		switch {
		case capitalize && unicode.IsLetter(r):
			runes[i] = unicode.ToUpper(r)
			capitalize = false
		case r == '.' || r == '!' || r == '?' || r == '\n':
			capitalize = true
		}
	}
	return string(runes)
}

// lowerWords splits text into lowercase words on anything that is not a
// letter or digit, and on lower-to-upper case boundaries.
func lowerWords(text string) []string {
	var (
		words []string
		cur   []rune
		prev  rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for _, r := range text {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}
