// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv looks up manuscript metadata from the arXiv Atom API and
// exposes it as Manuscript, Author, Link and Category values.
//
//	m, err := arxiv.Get(ctx, "1202.0819")
//	if errors.Is(err, arxiv.ErrNotFound) { ... }
//	fmt.Println(m.Title, m.PrimaryCategory().LongDescription())
//
// Each Get issues exactly one HTTP request. There is no caching, retry or
// rate limiting; wrap Get if you need them.
package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv/internal/httputil"
	"github.com/pdiddy/arxiv/pkg/types"
)

const acceptAtom = "application/atom+xml"

// Client fetches manuscripts from an arXiv query endpoint.
type Client struct {
	HTTP   *http.Client
	Config types.ClientConfig
	Logger *zap.Logger
}

// NewClient returns a client for cfg. Zero config fields take the defaults
// from package types. A nil logger disables logging.
func NewClient(cfg types.ClientConfig, logger *zap.Logger) *Client {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}
}

var defaultClient = NewClient(types.ClientConfig{}, nil)

// Get fetches a manuscript using the default client.
func Get(ctx context.Context, identifier string) (*Manuscript, error) {
	return defaultClient.Get(ctx, identifier)
}

// Get fetches the latest version of the manuscript named by identifier
// (e.g. "1202.0819", "arXiv:1202.0819v2", "http://arxiv.org/abs/math/0510097").
// Errors wrap ErrTransport, ErrNotFound or ErrParse.
func (c *Client) Get(ctx context.Context, identifier string) (*Manuscript, error) {
	id := NormalizeIdentifier(identifier)
	queryURL := c.queryURL(id)
	log := c.logger().With(zap.String("identifier", id))
	log.Debug("fetching manuscript", zap.String("url", queryURL))

	resp, err := httputil.Get(ctx, c.httpClient(), queryURL, c.Config.UserAgent, acceptAtom)
	if err != nil {
		log.Debug("arXiv request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: arXiv API request for %q: %v", ErrTransport, id, err)
	}
	defer resp.Body.Close()

	m, err := ParseFeed(resp.Body)
	if err != nil {
		log.Debug("arXiv response rejected", zap.Error(err))
		return nil, fmt.Errorf("fetching %q: %w", id, err)
	}

	log.Debug("fetched manuscript",
		zap.String("versioned_id", m.VersionedID),
		zap.Int("authors", len(m.Authors)),
		zap.String("primary_category", m.PrimaryCategory().Abbreviation),
	)
	return m, nil
}

func (c *Client) queryURL(id string) string {
	base := c.Config.BaseURL
	if base == "" {
		base = types.DefaultBaseURL
	}
	return base + "?" + url.Values{"id_list": {id}}.Encode()
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

// identifierPrefixes are stripped, case-insensitively, before the
// identifier is sent upstream.
var identifierPrefixes = []string{
	"https://arxiv.org/abs/",
	"http://arxiv.org/abs/",
	"https://export.arxiv.org/abs/",
	"http://export.arxiv.org/abs/",
	"arxiv:",
}

// NormalizeIdentifier trims whitespace and strips an "arXiv:" or abstract
// page URL prefix. It performs no other validation.
func NormalizeIdentifier(identifier string) string {
	id := strings.TrimSpace(identifier)
	lower := strings.ToLower(id)
	for _, p := range identifierPrefixes {
		if strings.HasPrefix(lower, p) {
			return id[len(p):]
		}
	}
	return id
}
