package intake

import (
	"reflect"
	"strings"
)

// jsonFieldName reports validation errors under the JSON field names clients send.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
