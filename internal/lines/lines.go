// Package lines splits text into lines the way the toolbox UI does: on "\n"
// with an optional preceding "\r".
package lines

import "strings"

// Split breaks s on "\n" and "\r\n". A trailing "\r" with no "\n" after it
// stays part of the last line. Split always returns at least one element.
func Split(s string) []string {
	parts := strings.Split(s, "\n")
	for i := 0; i < len(parts)-1; i++ {
		parts[i] = strings.TrimSuffix(parts[i], "\r")
	}
	return parts
}

// Count returns the number of lines in s, treating the empty string as zero lines.
func Count(s string) int {
	if s == "" {
		return 0
	}
	return len(Split(s))
}
