// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats manuscripts and tables for terminal output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv/pkg/arxiv"
)

// ManuscriptView is a Manuscript plus its derived properties, for
// structured output.
type ManuscriptView struct {
	arxiv.Manuscript `yaml:",inline"`

	Primary      string   `json:"primary_category" yaml:"primary_category"`
	Revised      bool     `json:"revision" yaml:"revision"`
	PDFAvailable bool     `json:"available_in_pdf" yaml:"available_in_pdf"`
	PDFLink      string   `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`
	LinkTypes    []string `json:"content_types" yaml:"content_types"`
}

// View builds the structured view of m.
func View(m *arxiv.Manuscript) ManuscriptView {
	pdf, _ := m.PDFURL()
	return ManuscriptView{
		Manuscript:   *m,
		Primary:      m.PrimaryCategory().Abbreviation,
		Revised:      m.IsRevision(),
		PDFAvailable: m.AvailableInPDF(),
		PDFLink:      pdf,
		LinkTypes:    m.ContentTypes(),
	}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as YAML.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Manuscript writes a human-readable summary of m.
func Manuscript(w io.Writer, m *arxiv.Manuscript) {
	fmt.Fprintln(w, m.Title)
	fmt.Fprintln(w, strings.Repeat("=", min(runewidth.StringWidth(m.Title), 78)))

	fields := [][]string{
		{"arXiv ID", m.ID},
		{"Version", fmt.Sprintf("%d (%s)", m.Version, m.VersionedID)},
		{"URL", m.URL},
		{"Published", m.CreatedAt.Format("2006-01-02 15:04 MST")},
		{"Updated", m.UpdatedAt.Format("2006-01-02 15:04 MST")},
		{"Revised", yesNo(m.IsRevision())},
	}
	if m.Comment != "" {
		fields = append(fields, []string{"Comment", m.Comment})
	}
	if m.JournalRef != "" {
		fields = append(fields, []string{"Journal ref", m.JournalRef})
	}
	if m.DOI != "" {
		fields = append(fields, []string{"DOI", m.DOI})
	}
	if pdf, ok := m.PDFURL(); ok {
		fields = append(fields, []string{"PDF", pdf})
	} else {
		fields = append(fields, []string{"PDF", "not available"})
	}
	writeFields(w, fields)

	fmt.Fprintf(w, "\nAuthors (%d)\n", len(m.Authors))
	for i, a := range m.Authors {
		if len(a.Affiliations) == 0 {
			fmt.Fprintf(w, "  %d. %s\n", i+1, a.Name)
			continue
		}
		fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, a.Name, strings.Join(a.Affiliations, "; "))
	}

	fmt.Fprintln(w, "\nCategories")
	for i, c := range m.Categories {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %s\n", marker, c.LongDescription())
	}

	fmt.Fprintln(w, "\nLinks")
	rows := make([][]string, 0, len(m.Links))
	for _, l := range m.Links {
		ct := l.ContentType
		if ct == "" {
			ct = "-"
		}
		rows = append(rows, []string{ct, l.URL})
	}
	Table(w, nil, rows, 0)

	if m.Abstract != "" {
		fmt.Fprintln(w, "\nAbstract")
		for _, line := range Wrap(m.Abstract, 78) {
			fmt.Fprintln(w, "  "+line)
		}
	}
}

func writeFields(w io.Writer, fields [][]string) {
	width := 0
	for _, f := range fields {
		width = max(width, runewidth.StringWidth(f[0]))
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%s:%s %s\n", f[0], strings.Repeat(" ", width-runewidth.StringWidth(f[0])), f[1])
	}
}

// Table writes rows as aligned columns using display width, so CJK and
// accented names line up. Cells wider than maxWidth are truncated with
// "..."; maxWidth <= 0 disables truncation. A nil header is omitted.
func Table(w io.Writer, header []string, rows [][]string, maxWidth int) {
	cols := len(header)
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if cols == 0 {
		return
	}

	cell := func(row []string, i int) string {
		if i >= len(row) {
			return ""
		}
		if maxWidth > 0 {
			return runewidth.Truncate(row[i], maxWidth, "...")
		}
		return row[i]
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i := 0; i < cols; i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(cell(row, i)))
		}
	}
	if header != nil {
		measure(header)
	}
	for _, r := range rows {
		measure(r)
	}

	writeRow := func(row []string) {
		var sb strings.Builder
		sb.WriteString("  ")
		for i := 0; i < cols; i++ {
			c := cell(row, i)
			sb.WriteString(c)
			if i < cols-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(c)+2))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}

	if header != nil {
		writeRow(header)
		total := 0
		for _, wd := range widths {
			total += wd + 2
		}
		fmt.Fprintln(w, "  "+strings.Repeat("-", total-2))
	}
	for _, r := range rows {
		writeRow(r)
	}
}

// Wrap breaks s into lines no wider than width display columns. Words
// longer than width get a line of their own.
func Wrap(s string, width int) []string {
	var (
		lines []string
		line  strings.Builder
		lw    int
	)
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if lw > 0 && lw+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lw = 0
		}
		if lw > 0 {
			line.WriteByte(' ')
			lw++
		}
		line.WriteString(word)
		lw += ww
	}
	if lw > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
