package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, id := range []string{"text-compare", "csv-json", "json-formatter", "jwt-decoder"} {
		tool, ok := c.Get(id)
		if !ok {
			t.Errorf("expected tool %q in catalog", id)
			continue
		}
		if !strings.HasPrefix(tool.API, "/api/v1/") {
			t.Errorf("tool %q: expected api route, got %q", id, tool.API)
		}
	}

	for _, tool := range c.All() {
		if tool.Status == StatusSoon && tool.API != "" {
			t.Errorf("tool %q is not released but has api %q", tool.ID, tool.API)
		}
	}
}

const sample = `
tools:
  - id: a
    name: A
    category: Text
    popular: true
  - id: b
    name: B
    category: Dev
    status: beta
  - id: c
    name: C
    category: Text
    popular: true
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := ids(c.All()); !cmp.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("All() = %v", got)
	}
	if got := ids(c.ByCategory("Text")); !cmp.Equal(got, []string{"a", "c"}) {
		t.Errorf("ByCategory(Text) = %v", got)
	}
	if got := ids(c.Popular(1)); !cmp.Equal(got, []string{"a"}) {
		t.Errorf("Popular(1) = %v", got)
	}
	if got := ids(c.Popular(0)); !cmp.Equal(got, []string{"a", "c"}) {
		t.Errorf("Popular(0) = %v", got)
	}
	if got := c.Categories(); !cmp.Equal(got, []string{"Text", "Dev"}) {
		t.Errorf("Categories() = %v", got)
	}

	a, _ := c.Get("a")
	if a.Status != StatusStable {
		t.Errorf("expected default status stable, got %q", a.Status)
	}
	b, _ := c.Get("b")
	if b.Status != StatusBeta {
		t.Errorf("expected status beta, got %q", b.Status)
	}
	if _, ok := c.Get("zzz"); ok {
		t.Error("expected unknown id to be missing")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":     "tools: [",
		"missing id":   "tools:\n  - name: X\n",
		"duplicate id": "tools:\n  - id: x\n  - id: x\n",
	}
	for name, in := range tests {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	all := c.All()
	all[0].Name = "changed"
	if got, _ := c.Get("a"); got.Name != "A" {
		t.Errorf("catalog mutated through All(): %q", got.Name)
	}
}

func ids(tools []Tool) []string {
	out := []string{}
	for _, t := range tools {
		out = append(out, t.ID)
	}
	return out
}
