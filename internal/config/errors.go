package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was
	// provided by any configuration source. The server cannot issue or
	// verify bearer tokens without it.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
)
