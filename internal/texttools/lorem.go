package texttools

import (
	"fmt"
	"strings"
)

// Paragraph bounds for Lorem.
const (
	MinLoremParagraphs = 1
	MaxLoremParagraphs = 20
)

const loremParagraph = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

// Lorem returns n placeholder paragraphs separated by blank lines.
func Lorem(n int) (string, error) {
	if n < MinLoremParagraphs || n > MaxLoremParagraphs {
		return "", fmt.Errorf("paragraphs must be between %d and %d, got %d", MinLoremParagraphs, MaxLoremParagraphs, n)
	}
	p := make([]string, n)
	for i := range p {
		p[i] = loremParagraph
	}
	return strings.Join(p, "\n\n"), nil
}
