package csvjson

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/4tbox/toolbox/internal/lines"
)

// Record is one converted CSV row. Keys keep the header order.
type Record = *orderedmap.OrderedMap[string, string]

// ToJSON converts CSV text to records. The first non-blank line holds the
// headers. Rows shorter than the header get "" for the missing columns and
// fields past the last header are dropped. Input without any non-blank line
// yields an empty slice.
func ToJSON(csv string) []Record {
	var rows []string
	for _, l := range lines.Split(trim(csv)) {
		if trim(l) != "" {
			rows = append(rows, l)
		}
	}

	records := make([]Record, 0, max(len(rows)-1, 0))
	if len(rows) == 0 {
		return records
	}

	headers := SplitLine(rows[0])
	for _, row := range rows[1:] {
		values := SplitLine(row)
		rec := orderedmap.New[string, string]()
		for i, h := range headers {
			v := ""
			if i < len(values) {
				v = values[i]
			}
			rec.Set(h, v)
		}
		records = append(records, rec)
	}
	return records
}

// Marshal renders records as a JSON array, indented by two spaces when pretty is set.
func Marshal(records []Record, pretty bool) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	if !pretty {
		return json.Marshal(records)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// trim strips whitespace and byte order marks from both ends of s.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
