// Package catalog holds the static questionnaire configuration: the 50
// items, the strength patterns, the section weights and the profile
// themes. The default catalog is embedded in the binary; an alternative
// file can be loaded via the CATALOG_PATH environment variable.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"btyesteem/internal/model"
)

//go:embed catalog.json
var defaultCatalog []byte

// Catalog is the validated, immutable questionnaire configuration.
type Catalog struct {
	Items          []model.Item              `json:"items"`
	Strengths      []model.StrengthCandidate `json:"strengths"`
	SectionWeights map[model.Section]float64 `json:"sectionWeights"`
	ProfileThemes  []model.ProfileTheme      `json:"profileThemes"`

	reverse map[int]bool
}

// Load returns the embedded default catalog, or the file named by
// CATALOG_PATH when that variable is set.
func Load() (*Catalog, error) {
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		return LoadFile(path)
	}
	return parse(defaultCatalog)
}

// LoadFile loads and validates a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	c.reverse = make(map[int]bool, len(c.Items))
	for _, it := range c.Items {
		if it.ReverseCoded {
			c.reverse[it.Index] = true
		}
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Items) != model.ItemCount {
		return fmt.Errorf("expected %d items, got %d", model.ItemCount, len(c.Items))
	}
	for i, it := range c.Items {
		if it.Index != i {
			return fmt.Errorf("item at position %d has index %d", i, it.Index)
		}
		want := model.Sections[i/model.SectionSize]
		if it.Section != want {
			return fmt.Errorf("item %d: section %q, want %q", i, it.Section, want)
		}
		if it.Text == "" {
			return fmt.Errorf("item %d: empty text", i)
		}
	}

	if len(c.SectionWeights) != len(model.Sections) {
		return fmt.Errorf("expected %d section weights, got %d", len(model.Sections), len(c.SectionWeights))
	}
	var sum float64
	for _, s := range model.Sections {
		w, ok := c.SectionWeights[s]
		if !ok {
			return fmt.Errorf("missing weight for section %q", s)
		}
		if w <= 0 {
			return fmt.Errorf("section %q: non-positive weight %v", s, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("section weights sum to %v, want 1.0", sum)
	}

	if len(c.Strengths) == 0 {
		return fmt.Errorf("no strength candidates")
	}
	seen := make(map[string]bool, len(c.Strengths))
	for _, s := range c.Strengths {
		if s.Key == "" {
			return fmt.Errorf("strength with empty key")
		}
		if seen[s.Key] {
			return fmt.Errorf("duplicate strength key %q", s.Key)
		}
		seen[s.Key] = true
		if len(s.EvidenceIndices) == 0 {
			return fmt.Errorf("strength %q: no evidence indices", s.Key)
		}
		for _, idx := range s.EvidenceIndices {
			if idx < 0 || idx >= model.ItemCount {
				return fmt.Errorf("strength %q: evidence index %d out of range", s.Key, idx)
			}
		}
		if s.Threshold < model.ScaleMin || s.Threshold > model.ScaleMax {
			return fmt.Errorf("strength %q: threshold %v outside answer scale", s.Key, s.Threshold)
		}
	}

	themed := make(map[model.ProfileType]bool, len(c.ProfileThemes))
	for _, t := range c.ProfileThemes {
		if t.Profile == "" || t.Label == "" {
			return fmt.Errorf("profile theme with empty profile or label")
		}
		if themed[t.Profile] {
			return fmt.Errorf("duplicate theme for profile %q", t.Profile)
		}
		themed[t.Profile] = true
	}
	return nil
}

// IsReverse reports whether the item at index i is reverse-coded.
func (c *Catalog) IsReverse(i int) bool {
	return c.reverse[i]
}

// Theme returns the display theme for a profile, or false when the
// catalog carries none for it.
func (c *Catalog) Theme(p model.ProfileType) (model.ProfileTheme, bool) {
	for _, t := range c.ProfileThemes {
		if t.Profile == p {
			return t, true
		}
	}
	return model.ProfileTheme{}, false
}
