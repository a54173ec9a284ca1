package csvjson

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// ErrInvalidJSON is matched by every error ToCSV returns for unparsable input.
var ErrInvalidJSON = errors.New("invalid JSON")

// ParseError carries the parser message for input ToCSV could not parse.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid JSON: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrInvalidJSON }

// ToCSV converts a JSON array of objects to CSV. A non-array value is
// treated as a one-element array. Columns are the union of all keys in
// order of first appearance. Data values containing a comma, a quote or a
// newline are quoted; the header line is written as-is.
func ToCSV(jsonText string) (string, error) {
	if err := fastjson.Validate(jsonText); err != nil {
		return "", &ParseError{Err: err}
	}
	var p fastjson.Parser
	root, err := p.Parse(jsonText)
	if err != nil {
		return "", &ParseError{Err: err}
	}

	items := []*fastjson.Value{root}
	if root.Type() == fastjson.TypeArray {
		items, _ = root.Array()
	}
	if len(items) == 0 {
		return "", nil
	}

	fields := make([]map[string]*fastjson.Value, len(items))
	var headers []string
	seen := make(map[string]bool)
	for i, item := range items {
		keys, values := entries(item)
		fields[i] = values
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}

	out := make([]string, 0, len(items)+1)
	out = append(out, strings.Join(headers, ","))
	for _, values := range fields {
		row := make([]string, len(headers))
		for j, h := range headers {
			row[j] = escapeValue(coerce(values[h]))
		}
		out = append(out, strings.Join(row, ","))
	}
	return strings.Join(out, "\n"), nil
}

// entries lists the enumerable keys of v with their values. Objects yield
// their members (a repeated key keeps its first position and last value),
// arrays and strings yield their indices, scalars yield nothing.
func entries(v *fastjson.Value) ([]string, map[string]*fastjson.Value) {
	values := make(map[string]*fastjson.Value)
	var keys []string

	switch v.Type() {
	case fastjson.TypeObject:
		obj, _ := v.Object()
		obj.Visit(func(key []byte, val *fastjson.Value) {
			k := string(key)
			if _, ok := values[k]; !ok {
				keys = append(keys, k)
			}
			values[k] = val
		})
	case fastjson.TypeArray:
		arr, _ := v.Array()
		for i, el := range arr {
			k := strconv.Itoa(i)
			keys = append(keys, k)
			values[k] = el
		}
	case fastjson.TypeString:
		s, _ := v.StringBytes()
		var a fastjson.Arena
		i := 0
		for _, r := range string(s) {
			k := strconv.Itoa(i)
			keys = append(keys, k)
			values[k] = a.NewString(string(r))
			i++
		}
	}
	return keys, values
}

// coerce renders a JSON value the way JavaScript's String() would, with a
// missing or null value becoming "".
func coerce(v *fastjson.Value) string {
	if v == nil {
		return ""
	}
	switch v.Type() {
	case fastjson.TypeNull:
		return ""
	case fastjson.TypeString:
		s, _ := v.StringBytes()
		return string(s)
	case fastjson.TypeNumber:
		f, _ := v.Float64()
		return formatNumber(f)
	case fastjson.TypeTrue:
		return "true"
	case fastjson.TypeFalse:
		return "false"
	case fastjson.TypeArray:
		arr, _ := v.Array()
		parts := make([]string, len(arr))
		for i, el := range arr {
			parts[i] = coerce(el)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// formatNumber follows Number.prototype.toString: plain decimal notation for
// magnitudes in [1e-6, 1e21), exponent notation otherwise.
func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + exp[:1] + digits
}

func escapeValue(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
