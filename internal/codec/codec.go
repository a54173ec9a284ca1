// Package codec encodes and decodes text for the Base64 and URL tools.
package codec

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// EncodeBase64 encodes the UTF-8 bytes of text with the standard alphabet.
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 decodes standard or URL-safe Base64, padded or not. The
// decoded bytes must be valid UTF-8.
func DecodeBase64(text string) (string, error) {
	s := strings.Join(strings.Fields(text), "")
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	s = strings.TrimRight(s, "=")

	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("decode base64: result is not valid UTF-8 text")
	}
	return string(b), nil
}

// EncodeURL escapes text like JavaScript's encodeURIComponent.
func EncodeURL(text string) string {
	// QueryEscape differs from encodeURIComponent in the space and in the
	// characters JavaScript leaves unescaped.
	s := url.QueryEscape(text)
	return strings.NewReplacer(
		"+", "%20",
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	).Replace(s)
}

// DecodeURL reverses EncodeURL. A "+" is kept as a literal plus sign.
func DecodeURL(text string) (string, error) {
	s, err := url.PathUnescape(text)
	if err != nil {
		return "", fmt.Errorf("decode url: %w", err)
	}
	return s, nil
}
