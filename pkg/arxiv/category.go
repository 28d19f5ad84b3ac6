// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed categories.yaml
var categoriesYAML []byte

// Category is an arXiv subject classification.
type Category struct {
	// Abbreviation is the short code (e.g. "astro-ph.IM").
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`

	// Description is the human label
	// (e.g. "Physics - Instrumentation and Methods for Astrophysics").
	Description string `json:"description" yaml:"description"`
}

// LongDescription returns "abbreviation (description)".
func (c Category) LongDescription() string {
	return fmt.Sprintf("%s (%s)", c.Abbreviation, c.Description)
}

// registry decodes the embedded table on first use. It is never written
// after that, so concurrent lookups need no locking.
var registry = sync.OnceValue(func() map[string]Category {
	var raw map[string]string
	if err := yaml.Unmarshal(categoriesYAML, &raw); err != nil {
		panic(fmt.Sprintf("arxiv: decoding embedded categories: %v", err))
	}
	table := make(map[string]Category, len(raw))
	for abbr, desc := range raw {
		table[abbr] = Category{Abbreviation: abbr, Description: strings.TrimSpace(desc)}
	}
	return table
})

// LookupCategory resolves a subject code against the registry.
func LookupCategory(abbreviation string) (Category, error) {
	c, ok := registry()[abbreviation]
	if !ok {
		return Category{}, fmt.Errorf("%w: category %q", ErrNotFound, abbreviation)
	}
	return c, nil
}

// Categories returns every registered category sorted by abbreviation.
func Categories() []Category {
	table := registry()
	out := make([]Category, 0, len(table))
	for _, c := range table {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Abbreviation < out[j].Abbreviation
	})
	return out
}
