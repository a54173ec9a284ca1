package lines

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single", "abc", []string{"abc"}},
		{"lf", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"mixed", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"trailing newline", "a\n", []string{"a", ""}},
		{"bare cr kept", "a\rb", []string{"a\rb"}},
		{"trailing cr kept", "a\nb\r", []string{"a", "b\r"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Split(tt.in)); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestCount(t *testing.T) {
	if got := Count(""); got != 0 {
		t.Errorf("Count(\"\") = %d, want 0", got)
	}
	if got := Count("one"); got != 1 {
		t.Errorf("Count(one) = %d, want 1", got)
	}
	if got := Count("a\r\nb\n"); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
}
