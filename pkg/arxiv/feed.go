// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// arXiv Atom feed XML structures. Extension elements live in the
// http://arxiv.org/schemas/atom namespace.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID              string         `xml:"id"`
	Updated         string         `xml:"updated"`
	Published       string         `xml:"published"`
	Title           string         `xml:"title"`
	Summary         string         `xml:"summary"`
	Authors         []atomAuthor   `xml:"author"`
	Links           []atomLink     `xml:"link"`
	Categories      []atomCategory `xml:"category"`
	PrimaryCategory *atomCategory  `xml:"http://arxiv.org/schemas/atom primary_category"`
	Comment         string         `xml:"http://arxiv.org/schemas/atom comment"`
	JournalRef      string         `xml:"http://arxiv.org/schemas/atom journal_ref"`
	DOI             string         `xml:"http://arxiv.org/schemas/atom doi"`
}

type atomAuthor struct {
	Name         string   `xml:"name"`
	Affiliations []string `xml:"http://arxiv.org/schemas/atom affiliation"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
	Rel   string `xml:"rel,attr"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// ParseFeed decodes an arXiv Atom response and builds a Manuscript from its
// first entry. A feed with no entries, or whose entry is an API error
// report, yields ErrNotFound; anything that does not fit the schema yields
// ErrParse.
func ParseFeed(r io.Reader) (*Manuscript, error) {
	var feed atomFeed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: decoding feed: %v", ErrParse, err)
	}
	if len(feed.Entries) == 0 {
		return nil, fmt.Errorf("%w: feed has no entries", ErrNotFound)
	}
	return parseEntry(feed.Entries[0])
}

func parseEntry(e atomEntry) (*Manuscript, error) {
	entryID := strings.TrimSpace(e.ID)
	if entryID == "" {
		return nil, fmt.Errorf("%w: entry has no id", ErrNotFound)
	}
	// The API reports bad identifiers as a single entry under /api/errors.
	if strings.Contains(entryID, "/api/errors") {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, squish(e.Summary))
	}

	versionedID := extractVersionedID(entryID)
	id, version, err := SplitVersionedID(versionedID)
	if err != nil {
		return nil, err
	}

	title := squish(e.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: entry %s has no title", ErrParse, versionedID)
	}

	createdAt, err := parseTimestamp("published", e.Published)
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTimestamp("updated", e.Updated)
	if err != nil {
		return nil, err
	}

	categories, err := resolveCategories(e)
	if err != nil {
		return nil, err
	}

	m := &Manuscript{
		VersionedID: versionedID,
		ID:          id,
		Version:     version,
		URL:         AbstractURL(versionedID),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Title:       title,
		Abstract:    squish(e.Summary),
		Comment:     squish(e.Comment),
		JournalRef:  squish(e.JournalRef),
		DOI:         strings.TrimSpace(e.DOI),
		Categories:  categories,
		Authors:     make([]Author, 0, len(e.Authors)),
		Links:       make([]Link, 0, len(e.Links)),
	}

	for _, a := range e.Authors {
		author := Author{Name: squish(a.Name)}
		for _, aff := range a.Affiliations {
			if aff = squish(aff); aff != "" {
				author.Affiliations = append(author.Affiliations, aff)
			}
		}
		m.Authors = append(m.Authors, author)
	}

	for _, l := range e.Links {
		link := Link{
			URL:         strings.TrimSpace(l.Href),
			ContentType: strings.TrimSpace(l.Type),
			Title:       strings.TrimSpace(l.Title),
			Rel:         strings.TrimSpace(l.Rel),
		}
		// title="pdf" marks the canonical PDF link.
		if link.Title == "pdf" {
			link.ContentType = ContentTypePDF
		}
		m.Links = append(m.Links, link)
	}

	return m, nil
}

// resolveCategories looks up every category term in feed order, moving the
// primary category to the front.
func resolveCategories(e atomEntry) ([]Category, error) {
	terms := make([]string, 0, len(e.Categories)+1)
	seen := make(map[string]bool, len(e.Categories)+1)
	if e.PrimaryCategory != nil {
		if t := strings.TrimSpace(e.PrimaryCategory.Term); t != "" {
			terms = append(terms, t)
			seen[t] = true
		}
	}
	for _, c := range e.Categories {
		t := strings.TrimSpace(c.Term)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: entry has no categories", ErrParse)
	}

	categories := make([]Category, 0, len(terms))
	for _, t := range terms {
		c, err := LookupCategory(t)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: unrecognized category %q", ErrParse, t), err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// extractVersionedID pulls the versioned id from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/1202.0819v1" -> "1202.0819v1",
// "http://arxiv.org/abs/math/0510097v1" -> "math/0510097v1").
func extractVersionedID(idURL string) string {
	const prefix = "/abs/"
	if idx := strings.Index(idURL, prefix); idx >= 0 {
		return idURL[idx+len(prefix):]
	}
	return idURL[strings.LastIndex(idURL, "/")+1:]
}

func parseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s timestamp %q: %v", ErrParse, field, value, err)
	}
	return t, nil
}

// squish trims and collapses internal whitespace runs to single spaces.
func squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
