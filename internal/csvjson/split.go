package csvjson

import "strings"

// SplitLine tokenizes one CSV line. Fields may be wrapped in double quotes,
// inside which commas are literal and "" stands for one quote character.
// Unbalanced quotes are not an error: an unterminated quoted field runs to
// the end of the line. The result always has at least one field.
func SplitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}

	return append(fields, current.String())
}
