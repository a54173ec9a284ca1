package linediff

import (
	"strings"
	"testing"
)

func TestInline_Reconstructs(t *testing.T) {
	pairs := [][2]string{
		{"hello world", "hello there world"},
		{"the quick brown fox", "the slow brown dog"},
		{"", "new"},
		{"gone", ""},
	}
	for _, p := range pairs {
		segs := Inline(p[0], p[1])

		var left, right strings.Builder
		for _, s := range segs {
			switch s.Op {
			case OpEqual:
				left.WriteString(s.Text)
				right.WriteString(s.Text)
			case OpDelete:
				left.WriteString(s.Text)
			case OpInsert:
				right.WriteString(s.Text)
			default:
				t.Fatalf("unexpected op %q", s.Op)
			}
		}
		if left.String() != p[0] {
			t.Errorf("left reconstruction: got %q, want %q", left.String(), p[0])
		}
		if right.String() != p[1] {
			t.Errorf("right reconstruction: got %q, want %q", right.String(), p[1])
		}
	}
}

func TestInlineAll_OnlyChanged(t *testing.T) {
	records := Compute("same\nold\ngone", "same\nnew")
	got := InlineAll(records)

	if len(got) != 1 {
		t.Fatalf("expected inline segments for 1 record, got %d", len(got))
	}
	if _, ok := got[1]; !ok {
		t.Errorf("expected segments for index 1, got keys %v", got)
	}
}
