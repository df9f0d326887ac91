package models

import (
	"errors"
	"fmt"
)

// ErrPlaceNotFound means the geocoder answered but had no match for the
// place name. Distinct from UpstreamError so callers can phrase the
// failure as a resolution miss rather than an outage.
var ErrPlaceNotFound = errors.New("no geocoding result for place")

// ErrAINotConfigured means the generative client has no API key and was
// never invoked.
var ErrAINotConfigured = errors.New("generative AI client not configured")

// UpstreamError wraps a failed call to an external collaborator: transport
// failure, timeout, or a non-success status.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError marks whole-document structural breakage. Row-level gaps are
// never reported as errors; extractors skip them.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse document from %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
