// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

// Author is one manuscript author as listed in the feed.
type Author struct {
	// Name is the display name (e.g. "Michael T. Murphy").
	Name string `json:"name" yaml:"name"`

	// Affiliations lists institutions in feed order. It may be empty.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}
