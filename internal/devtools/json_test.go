package devtools

import (
	"errors"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	got, err := FormatJSON(` {"b":1,"a":[true,null]} `, 2)
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	want := "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null\n  ]\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatJSON_IndentCapped(t *testing.T) {
	got, err := FormatJSON(`[1]`, 50)
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	if got != "[\n          1\n]" {
		t.Errorf("got %q", got)
	}
}

func TestFormatJSON_ZeroIndentMinifies(t *testing.T) {
	got, err := FormatJSON("{\n  \"a\": 1\n}", 0)
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}
	if got != `{"a":1}` {
		t.Errorf("got %q", got)
	}
}

func TestMinifyJSON(t *testing.T) {
	got, err := MinifyJSON("{ \"a\" : [ 1 , 2 ],\n \"b\": \"x y\" }")
	if err != nil {
		t.Fatalf("MinifyJSON failed: %v", err)
	}
	if got != `{"a":[1,2],"b":"x y"}` {
		t.Errorf("got %q", got)
	}
}

func TestFormatJSON_Invalid(t *testing.T) {
	for _, in := range []string{"", "{", "nope", `{"a":1,}`} {
		if _, err := FormatJSON(in, 2); !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("FormatJSON(%q): expected ErrInvalidJSON, got %v", in, err)
		}
	}
}
