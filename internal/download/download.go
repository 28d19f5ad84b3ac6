// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package download saves a manuscript's PDF to disk.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv/internal/httputil"
	"github.com/pdiddy/arxiv/pkg/arxiv"
	"github.com/pdiddy/arxiv/pkg/types"
)

// Result describes a completed PDF download.
type Result struct {
	Path    string
	URL     string
	Bytes   int64
	Skipped bool
}

// Slug returns a filename-safe form of a versioned id
// ("hep-th/9901001v1" -> "hep-th-9901001v1").
func Slug(versionedID string) string {
	return strings.ReplaceAll(versionedID, "/", "-")
}

// PDF downloads m's PDF link into cfg.Dir as <slug>.pdf. An existing file
// is left in place and reported as skipped. The download goes to a temp
// file that is renamed on success, so a partial file never appears under
// the final name.
func PDF(ctx context.Context, client *http.Client, m *arxiv.Manuscript, cfg types.DownloadConfig, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	pdfURL, ok := m.PDFURL()
	if !ok {
		return Result{}, fmt.Errorf("%w: %s has no PDF link", arxiv.ErrNotFound, m.VersionedID)
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	destPath := filepath.Join(dir, Slug(m.VersionedID)+".pdf")
	res := Result{Path: destPath, URL: pdfURL}

	if info, err := os.Stat(destPath); err == nil {
		log.Info("pdf already present", zap.String("path", destPath))
		res.Bytes = info.Size()
		res.Skipped = true
		return res, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	log.Info("downloading pdf", zap.String("url", pdfURL), zap.String("path", destPath))
	resp, err := httputil.Get(ctx, client, pdfURL, cfg.UserAgent, arxiv.ContentTypePDF)
	if err != nil {
		return Result{}, fmt.Errorf("%w: downloading %s: %v", arxiv.ErrTransport, pdfURL, err)
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp(dir, ".download-*.tmp")
	if err != nil {
		return Result{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("%w: writing download: %v", arxiv.ErrTransport, copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("renaming temp file: %w", err)
	}

	res.Bytes = n
	return res, nil
}
