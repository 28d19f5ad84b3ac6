// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitVersionedID(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantID      string
		wantVersion int
	}{
		{"modern", "1202.0819v1", "1202.0819", 1},
		{"five digit", "2301.12345v12", "2301.12345", 12},
		{"legacy", "hep-th/9901001v3", "hep-th/9901001", 3},
		{"legacy with v in archive", "solv-int/9901001v2", "solv-int/9901001", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, version, err := SplitVersionedID(tt.in)
			if err != nil {
				t.Fatalf("SplitVersionedID(%q) error: %v", tt.in, err)
			}
			if id != tt.wantID || version != tt.wantVersion {
				t.Errorf("SplitVersionedID(%q) = (%q, %d), want (%q, %d)", tt.in, id, version, tt.wantID, tt.wantVersion)
			}
			if len(id) >= len(tt.in) || tt.in[:len(id)] != id {
				t.Errorf("id %q is not a strict prefix of %q", id, tt.in)
			}
		})
	}
}

func TestSplitVersionedIDErrors(t *testing.T) {
	for _, in := range []string{"", "1202.0819", "1202.0819v", "1202.0819v0", "1202.0819vx", "v1", "1202.0819v1a"} {
		if _, _, err := SplitVersionedID(in); !errors.Is(err, ErrParse) {
			t.Errorf("SplitVersionedID(%q) error = %v, want ErrParse", in, err)
		}
	}
}

func TestAbstractURL(t *testing.T) {
	assert.Equal(t, "http://arxiv.org/abs/1202.0819v1", AbstractURL("1202.0819v1"))
}

func TestIsRevision(t *testing.T) {
	created := time.Date(2012, 2, 3, 21, 0, 0, 0, time.UTC)

	m := &Manuscript{CreatedAt: created, UpdatedAt: created}
	assert.False(t, m.IsRevision())

	// Same instant in another zone is not a revision.
	m.UpdatedAt = created.In(time.FixedZone("EST", -5*3600))
	assert.False(t, m.IsRevision())

	m.UpdatedAt = created.Add(24 * time.Hour)
	assert.True(t, m.IsRevision())
}

func TestLinkDerivedAccessors(t *testing.T) {
	tests := []struct {
		name      string
		links     []Link
		wantPDF   string
		wantOK    bool
		wantTypes []string
	}{
		{"no links", nil, "", false, nil},
		{
			"html only",
			[]Link{{URL: "http://arxiv.org/abs/1v1", ContentType: ContentTypeHTML}},
			"", false, []string{"text/html"},
		},
		{
			"first pdf wins",
			[]Link{
				{URL: "http://arxiv.org/abs/1v1", ContentType: ContentTypeHTML},
				{URL: "http://arxiv.org/pdf/1v1", ContentType: ContentTypePDF},
				{URL: "http://mirror/pdf/1v1", ContentType: ContentTypePDF},
			},
			"http://arxiv.org/pdf/1v1", true, []string{"application/pdf", "text/html"},
		},
		{
			"untyped links excluded from content types",
			[]Link{
				{URL: "http://dx.doi.org/10.1/x", Title: "doi"},
				{URL: "http://arxiv.org/pdf/1v1", ContentType: ContentTypePDF},
			},
			"http://arxiv.org/pdf/1v1", true, []string{"application/pdf"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manuscript{Links: tt.links}
			got, ok := m.PDFURL()
			assert.Equal(t, tt.wantPDF, got)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOK, m.AvailableInPDF())
			assert.Equal(t, tt.wantTypes, m.ContentTypes())
		})
	}
}

func TestPrimaryCategory(t *testing.T) {
	assert.Equal(t, Category{}, (&Manuscript{}).PrimaryCategory())

	im, _ := LookupCategory("astro-ph.IM")
	co, _ := LookupCategory("astro-ph.CO")
	m := &Manuscript{Categories: []Category{im, co}}
	assert.Equal(t, im, m.PrimaryCategory())
}
