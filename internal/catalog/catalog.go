// Package catalog describes the tools offered by the site.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tools.yaml
var toolsYAML []byte

// Status is the release state of a tool.
type Status string

const (
	StatusStable Status = "stable"
	StatusBeta   Status = "beta"
	StatusSoon   Status = "soon"
)

// Tool is one catalog entry.
type Tool struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Path        string   `yaml:"path" json:"path"`
	API         string   `yaml:"api" json:"api,omitempty"`
	Category    string   `yaml:"category" json:"category"`
	Subcategory string   `yaml:"subcategory" json:"subcategory"`
	Status      Status   `yaml:"status" json:"status"`
	Popular     bool     `yaml:"popular" json:"popular"`
	Description string   `yaml:"description" json:"description"`
	Keywords    []string `yaml:"keywords" json:"keywords,omitempty"`
	Aliases     []string `yaml:"aliases" json:"aliases,omitempty"`
}

// Catalog is an immutable, ordered set of tools.
type Catalog struct {
	tools []Tool
	byID  map[string]int
}

// Load parses the embedded tool list.
func Load() (*Catalog, error) {
	return Parse(toolsYAML)
}

// Parse builds a catalog from YAML. Tool ids must be unique and non-empty.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Tools []Tool `yaml:"tools"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{tools: doc.Tools, byID: make(map[string]int, len(doc.Tools))}
	for i, t := range doc.Tools {
		if t.ID == "" {
			return nil, fmt.Errorf("parse catalog: tool %d has no id", i)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate tool id %q", t.ID)
		}
		if t.Status == "" {
			c.tools[i].Status = StatusStable
		}
		c.byID[t.ID] = i
	}
	return c, nil
}

// All returns every tool in catalog order.
func (c *Catalog) All() []Tool {
	return append([]Tool(nil), c.tools...)
}

// Get looks a tool up by id.
func (c *Catalog) Get(id string) (Tool, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}

// ByCategory returns the tools in category, in catalog order.
func (c *Catalog) ByCategory(category string) []Tool {
	var out []Tool
	for _, t := range c.tools {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Popular returns up to limit tools flagged as popular. A limit of zero or
// less returns all of them.
func (c *Catalog) Popular(limit int) []Tool {
	var out []Tool
	for _, t := range c.tools {
		if !t.Popular {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, t)
	}
	return out
}

// Categories lists category names in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range c.tools {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}
