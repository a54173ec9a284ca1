// Package linediff compares two texts line by line.
//
// The comparison is positional: line i of the left text is compared with
// line i of the right text and nothing is realigned. Inserting one line in
// the middle of a text therefore marks every following line as changed.
package linediff

import "github.com/4tbox/toolbox/internal/lines"

// Status classifies one aligned line pair.
type Status string

const (
	StatusSame    Status = "same"
	StatusAdded   Status = "added"
	StatusRemoved Status = "removed"
	StatusChanged Status = "changed"
)

// Record is the comparison result for one line index. Left or Right is nil
// when the index is past the end of that side.
type Record struct {
	Left   *string `json:"left"`
	Right  *string `json:"right"`
	Status Status  `json:"status"`
	Index  int     `json:"index"`
}

// Summary holds the per-status counts shown next to a comparison.
type Summary struct {
	Same       int `json:"same"`
	Changed    int `json:"changed"`
	Added      int `json:"added"`
	Removed    int `json:"removed"`
	LeftLines  int `json:"left_lines"`
	RightLines int `json:"right_lines"`
}

// Compute aligns left and right by line index and classifies every position.
// It returns max(len(leftLines), len(rightLines)) records.
func Compute(left, right string) []Record {
	leftLines := lines.Split(left)
	rightLines := lines.Split(right)

	n := max(len(leftLines), len(rightLines))
	out := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		var l, r *string
		if i < len(leftLines) {
			l = &leftLines[i]
		}
		if i < len(rightLines) {
			r = &rightLines[i]
		}
		out = append(out, Record{Left: l, Right: r, Status: classify(l, r), Index: i})
	}
	return out
}

func classify(l, r *string) Status {
	switch {
	case l == nil && r != nil:
		return StatusAdded
	case l != nil && r == nil:
		return StatusRemoved
	case l != nil && r != nil && *l != *r:
		return StatusChanged
	default:
		return StatusSame
	}
}

// Summarize counts records by status. Line totals treat an empty input as
// zero lines even though Compute still emits a record for it.
func Summarize(left, right string, records []Record) Summary {
	s := Summary{
		LeftLines:  lines.Count(left),
		RightLines: lines.Count(right),
	}
	for _, rec := range records {
		switch rec.Status {
		case StatusSame:
			s.Same++
		case StatusChanged:
			s.Changed++
		case StatusAdded:
			s.Added++
		case StatusRemoved:
			s.Removed++
		}
	}
	return s
}
