// Package presets loads the quick-start filter presets the widget offers as
// one-tap chips. Presets are merchandising data, kept in YAML so they ship
// without a deploy.
package presets

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
)

type Preset struct {
	Slug    string                 `yaml:"slug"`
	Label   string                 `yaml:"label"`
	Filters map[string]interface{} `yaml:"filters"`
}

type file struct {
	Presets []Preset `yaml:"presets"`
}

type Catalog struct {
	presets []Preset
	bySlug  map[string]Preset
}

// Load reads the preset catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw YAML. Presets without a slug are skipped.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	c := &Catalog{bySlug: map[string]Preset{}}
	for _, p := range f.Presets {
		p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))
		if p.Slug == "" {
			continue
		}
		c.presets = append(c.presets, p)
		c.bySlug[p.Slug] = p
	}
	return c, nil
}

// Empty returns a catalog with no presets, used when no file is configured.
func Empty() *Catalog {
	return &Catalog{bySlug: map[string]Preset{}}
}

func (c *Catalog) All() []Preset {
	return c.presets
}

// MergeUnder layers the preset's filters beneath the caller-supplied raw
// map: the caller wins on every conflicting key.
func (c *Catalog) MergeUnder(slug string, caller map[string]interface{}) map[string]interface{} {
	p, ok := c.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return caller
	}
	merged := make(map[string]interface{}, len(p.Filters)+len(caller))
	for k, v := range p.Filters {
		merged[k] = v
	}
	for k, v := range caller {
		merged[k] = v
	}
	return merged
}

// Normalized resolves a preset straight to canonical filters.
func (c *Catalog) Normalized(slug string) (filters.Filters, bool) {
	p, ok := c.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return filters.Filters{}, false
	}
	return filters.NormalizeFilters(p.Filters), true
}
