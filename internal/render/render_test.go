// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv/pkg/arxiv"
)

func sampleManuscript(t *testing.T) *arxiv.Manuscript {
	t.Helper()
	im, err := arxiv.LookupCategory("astro-ph.IM")
	require.NoError(t, err)
	co, err := arxiv.LookupCategory("astro-ph.CO")
	require.NoError(t, err)
	at := time.Date(2012, 2, 3, 21, 0, 0, 0, time.UTC)
	return &arxiv.Manuscript{
		VersionedID: "1202.0819v1",
		ID:          "1202.0819",
		Version:     1,
		URL:         "http://arxiv.org/abs/1202.0819v1",
		CreatedAt:   at,
		UpdatedAt:   at,
		Title:       "Laser frequency comb techniques for precise astronomical spectroscopy",
		Abstract:    "Precise astronomical spectroscopic analyses routinely assume that individual pixels in charge-coupled devices have uniform sensitivity to photons.",
		Comment:     "11 pages, 7 figures. Accepted for publication in MNRAS",
		Categories:  []arxiv.Category{im, co},
		Authors: []arxiv.Author{
			{Name: "Michael T. Murphy", Affiliations: []string{"Swinburne University of Technology"}},
			{Name: "Clayton R. Locke"},
		},
		Links: []arxiv.Link{
			{URL: "http://arxiv.org/abs/1202.0819v1", ContentType: arxiv.ContentTypeHTML},
			{URL: "http://arxiv.org/pdf/1202.0819v1", ContentType: arxiv.ContentTypePDF, Title: "pdf"},
		},
	}
}

func TestManuscriptSummary(t *testing.T) {
	var buf bytes.Buffer
	Manuscript(&buf, sampleManuscript(t))
	out := buf.String()

	for _, want := range []string{
		"Laser frequency comb techniques for precise astronomical spectroscopy",
		"arXiv ID:",
		"1 (1202.0819v1)",
		"Revised:   no",
		"PDF:       http://arxiv.org/pdf/1202.0819v1",
		"1. Michael T. Murphy (Swinburne University of Technology)",
		"2. Clayton R. Locke\n",
		"* astro-ph.IM (Physics - Instrumentation and Methods for Astrophysics)",
		"application/pdf  http://arxiv.org/pdf/1202.0819v1",
	} {
		assert.Contains(t, out, want)
	}
}

func TestManuscriptSummaryWithoutPDF(t *testing.T) {
	m := sampleManuscript(t)
	m.Links = m.Links[:1]
	var buf bytes.Buffer
	Manuscript(&buf, m)
	assert.Contains(t, buf.String(), "not available")
}

func TestViewCarriesDerivedFields(t *testing.T) {
	v := View(sampleManuscript(t))

	var jsonBuf bytes.Buffer
	require.NoError(t, JSON(&jsonBuf, v))
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	assert.Equal(t, "1202.0819v1", fromJSON["versioned_id"])
	assert.Equal(t, "astro-ph.IM", fromJSON["primary_category"])
	assert.Equal(t, false, fromJSON["revision"])
	assert.Equal(t, true, fromJSON["available_in_pdf"])
	assert.Equal(t, "http://arxiv.org/pdf/1202.0819v1", fromJSON["pdf_url"])

	var yamlBuf bytes.Buffer
	require.NoError(t, YAML(&yamlBuf, v))
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))
	assert.Equal(t, "1202.0819", fromYAML["id"])
	assert.Equal(t, []any{"application/pdf", "text/html"}, fromYAML["content_types"])
}

func TestTableAlignsByDisplayWidth(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"Name", "Affiliation"}, [][]string{
		{"山田太郎", "Kyoto University"},
		{"Ada", "Analytical Engine"},
	}, 0)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "  ---"))

	// The second column starts at the same display column on every row.
	col := func(line, cell string) int {
		return runewidth.StringWidth(line[:strings.Index(line, cell)])
	}
	assert.Equal(t, col(lines[0], "Affiliation"), col(lines[2], "Kyoto University"))
	assert.Equal(t, col(lines[0], "Affiliation"), col(lines[3], "Analytical Engine"))
}

func TestTableTruncates(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, nil, [][]string{{"A very long manuscript title that goes on", "x"}}, 10)
	assert.Contains(t, buf.String(), "A very ...")
	assert.NotContains(t, buf.String(), "goes on")
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, nil, nil, 0)
	assert.Empty(t, buf.String())
}

func TestWrap(t *testing.T) {
	lines := Wrap("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)

	assert.Equal(t, []string{"supercalifragilistic", "x"}, Wrap("supercalifragilistic x", 5))
	assert.Nil(t, Wrap("   ", 10))
}
