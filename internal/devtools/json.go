// Package devtools implements the developer utilities of the toolbox: JSON
// formatting, JWT inspection, regex testing and UUID generation.
package devtools

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// MaxIndent matches the cap JSON.stringify puts on indentation.
const MaxIndent = 10

// ErrInvalidJSON is returned when the input is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// FormatJSON re-indents text with indent spaces per level. An indent of
// zero or less produces compact output. Key order and number literals are
// kept as written.
func FormatJSON(text string, indent int) (string, error) {
	if indent <= 0 {
		return MinifyJSON(text)
	}
	indent = min(indent, MaxIndent)

	src, err := validJSON(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, src, "", strings.Repeat(" ", indent)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MinifyJSON removes insignificant whitespace from text.
func MinifyJSON(text string) (string, error) {
	src, err := validJSON(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, src); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func validJSON(text string) ([]byte, error) {
	src := []byte(strings.TrimSpace(text))
	var v any
	if err := json.Unmarshal(src, &v); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	return src, nil
}
