package linediff

import "github.com/sergi/go-diff/diffmatchpatch"

// SegmentOp is the kind of an inline segment.
type SegmentOp string

const (
	OpEqual  SegmentOp = "equal"
	OpInsert SegmentOp = "insert"
	OpDelete SegmentOp = "delete"
)

// Segment is a run of characters inside a changed line.
type Segment struct {
	Op   SegmentOp `json:"op"`
	Text string    `json:"text"`
}

// Inline computes character-level segments between the two sides of a
// changed line. It is for highlighting only and does not affect Compute.
func Inline(left, right string) []Segment {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(left, right, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	segs := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		var op SegmentOp
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		default:
			op = OpEqual
		}
		segs = append(segs, Segment{Op: op, Text: d.Text})
	}
	return segs
}

// InlineAll returns inline segments for every changed record, keyed by index.
func InlineAll(records []Record) map[int][]Segment {
	out := make(map[int][]Segment)
	for _, rec := range records {
		if rec.Status != StatusChanged {
			continue
		}
		out[rec.Index] = Inline(*rec.Left, *rec.Right)
	}
	return out
}
