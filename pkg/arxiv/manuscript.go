// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// absBase is the prefix of the canonical abstract page URL.
const absBase = "http://arxiv.org/abs/"

// Manuscript holds the metadata for one version of an arXiv document.
// Values returned by Get and ParseFeed are fully populated and are not
// modified afterwards.
type Manuscript struct {
	// VersionedID identifies one version (e.g. "1202.0819v1").
	VersionedID string `json:"versioned_id" yaml:"versioned_id"`

	// ID is VersionedID without the version suffix (e.g. "1202.0819").
	ID string `json:"id" yaml:"id"`

	// Version is the positive number following the final "v".
	Version int `json:"version" yaml:"version"`

	// URL is the abstract page for this version.
	URL string `json:"url" yaml:"url"`

	// CreatedAt is when the first version was published.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when this version was published. Equal to CreatedAt
	// for documents that were never revised.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`

	Title    string `json:"title" yaml:"title"`
	Abstract string `json:"abstract" yaml:"abstract"`

	// Comment is the submitter's note (e.g. "11 pages, 7 figures"). Empty when absent.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	JournalRef string `json:"journal_ref,omitempty" yaml:"journal_ref,omitempty"`
	DOI        string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Categories is never empty; the first element is the primary category.
	Categories []Category `json:"categories" yaml:"categories"`

	// Authors are in feed order.
	Authors []Author `json:"authors" yaml:"authors"`

	Links []Link `json:"links" yaml:"links"`
}

// PrimaryCategory returns the first category.
func (m *Manuscript) PrimaryCategory() Category {
	if len(m.Categories) == 0 {
		return Category{}
	}
	return m.Categories[0]
}

// IsRevision reports whether the manuscript was updated after it was first published.
func (m *Manuscript) IsRevision() bool {
	return !m.UpdatedAt.Equal(m.CreatedAt)
}

// AvailableInPDF reports whether any link is a PDF.
func (m *Manuscript) AvailableInPDF() bool {
	_, ok := m.PDFURL()
	return ok
}

// PDFURL returns the URL of the first PDF link.
func (m *Manuscript) PDFURL() (string, bool) {
	for _, l := range m.Links {
		if l.IsPDF() {
			return l.URL, true
		}
	}
	return "", false
}

// ContentTypes returns the distinct non-empty link content types, sorted.
func (m *Manuscript) ContentTypes() []string {
	seen := make(map[string]bool, len(m.Links))
	var out []string
	for _, l := range m.Links {
		if l.ContentType == "" || seen[l.ContentType] {
			continue
		}
		seen[l.ContentType] = true
		out = append(out, l.ContentType)
	}
	sort.Strings(out)
	return out
}

// SplitVersionedID splits "1202.0819v2" into "1202.0819" and 2.
func SplitVersionedID(versionedID string) (string, int, error) {
	idx := strings.LastIndex(versionedID, "v")
	if idx <= 0 || idx == len(versionedID)-1 {
		return "", 0, fmt.Errorf("%w: no version suffix in %q", ErrParse, versionedID)
	}
	digits := versionedID[idx+1:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", 0, fmt.Errorf("%w: malformed version suffix in %q", ErrParse, versionedID)
		}
	}
	version, err := strconv.Atoi(digits)
	if err != nil || version < 1 {
		return "", 0, fmt.Errorf("%w: invalid version in %q", ErrParse, versionedID)
	}
	return versionedID[:idx], version, nil
}

// AbstractURL returns the abstract page URL for a versioned id.
func AbstractURL(versionedID string) string {
	return absBase + versionedID
}
