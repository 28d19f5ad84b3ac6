// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv/pkg/arxiv"
)

// Format selects the export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want yaml or json)", s)
	}
}

// Manuscripts returns the full saved documents matching opts, in List order.
func (s *Store) Manuscripts(ctx context.Context, opts ListOptions) ([]*arxiv.Manuscript, error) {
	entries, err := s.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*arxiv.Manuscript, 0, len(entries))
	for _, e := range entries {
		m, err := s.Get(ctx, e.VersionedID)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Export writes the manuscripts matching opts to w. It returns the number written.
func (s *Store) Export(ctx context.Context, w io.Writer, format Format, opts ListOptions) (int, error) {
	ms, err := s.Manuscripts(ctx, opts)
	if err != nil {
		return 0, fmt.Errorf("querying for export: %w", err)
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ms); err != nil {
			return 0, fmt.Errorf("encoding JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ms); err != nil {
			return 0, fmt.Errorf("encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return 0, fmt.Errorf("encoding YAML: %w", err)
		}
	default:
		return 0, fmt.Errorf("unknown export format %q", format)
	}
	return len(ms), nil
}
