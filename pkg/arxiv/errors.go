// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "errors"

// Error kinds returned by Get, ParseFeed and LookupCategory. Returned errors
// wrap one of these; test with errors.Is.
var (
	// ErrTransport reports a network failure or a non-200 response.
	ErrTransport = errors.New("arxiv: transport error")

	// ErrNotFound reports an identifier or category code that resolves to nothing.
	ErrNotFound = errors.New("arxiv: not found")

	// ErrParse reports a response that does not match the expected feed schema.
	ErrParse = errors.New("arxiv: parse error")
)
