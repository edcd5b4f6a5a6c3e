package aiquiz

import "errors"

var (
	ErrNotConfigured   = errors.New("generation API key not configured")
	ErrUpstream        = errors.New("generation API request failed")
	ErrEmptyResponse   = errors.New("empty response from generation model")
	ErrMalformedOutput = errors.New("invalid quiz structure returned by generation model")
)
