// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/arxiv/pkg/arxiv"
	"github.com/pdiddy/arxiv/pkg/types"
)

const fakePDF = "%PDF-1.4 fake content"

func pdfServer(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte(fakePDF))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func withPDF(versionedID, url string) *arxiv.Manuscript {
	return &arxiv.Manuscript{
		VersionedID: versionedID,
		Links: []arxiv.Link{
			{URL: "http://arxiv.org/abs/" + versionedID, ContentType: arxiv.ContentTypeHTML},
			{URL: url, ContentType: arxiv.ContentTypePDF, Title: "pdf"},
		},
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "1202.0819v1", Slug("1202.0819v1"))
	assert.Equal(t, "hep-th-9901001v3", Slug("hep-th/9901001v3"))
}

func TestPDFDownloads(t *testing.T) {
	var calls int32
	ts := pdfServer(t, &calls)
	dir := filepath.Join(t.TempDir(), "papers")
	cfg := types.DownloadConfig{Dir: dir, HTTPConfig: types.HTTPConfig{UserAgent: "test/0.1"}}

	res, err := PDF(context.Background(), ts.Client(), withPDF("hep-th/9901001v3", ts.URL+"/pdf/hep-th/9901001v3"), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, filepath.Join(dir, "hep-th-9901001v3.pdf"), res.Path)
	assert.Equal(t, int64(len(fakePDF)), res.Bytes)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, fakePDF, string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// A second call skips the existing file.
	res, err = PDF(context.Background(), ts.Client(), withPDF("hep-th/9901001v3", ts.URL+"/pdf/hep-th/9901001v3"), cfg, nil)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPDFWithoutLink(t *testing.T) {
	m := &arxiv.Manuscript{VersionedID: "1202.0819v1"}
	_, err := PDF(context.Background(), http.DefaultClient, m, types.DownloadConfig{Dir: t.TempDir()}, nil)
	assert.ErrorIs(t, err, arxiv.ErrNotFound)
}

func TestPDFHTTPError(t *testing.T) {
	var calls int32
	ts := pdfServer(t, &calls)
	dir := t.TempDir()

	_, err := PDF(context.Background(), ts.Client(), withPDF("1202.0819v1", ts.URL+"/missing"), types.DownloadConfig{Dir: dir}, nil)
	assert.ErrorIs(t, err, arxiv.ErrTransport)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
