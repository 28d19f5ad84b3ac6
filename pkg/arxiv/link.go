// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

// Content types that appear on arXiv entry links.
const (
	ContentTypeHTML = "text/html"
	ContentTypePDF  = "application/pdf"
)

// Link is a resource associated with a manuscript.
type Link struct {
	// URL is the absolute resource URL.
	URL string `json:"url" yaml:"url"`

	// ContentType is the MIME type of the resource. Empty when the feed
	// does not declare one (DOI links, for example).
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`

	// Title is the feed's link title ("pdf", "doi"), if any.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Rel is the Atom link relation ("alternate", "related").
	Rel string `json:"rel,omitempty" yaml:"rel,omitempty"`
}

// IsPDF reports whether the link points at a PDF.
func (l Link) IsPDF() bool { return l.ContentType == ContentTypePDF }
