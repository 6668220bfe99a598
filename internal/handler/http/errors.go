// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lingap Contributors

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrMissingCredentials is returned by the auth middleware when the
	// incoming request carries neither an "Authorization" header nor a
	// session cookie.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into a scheme and a non-empty
	// token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInsufficientRole is returned by the role middleware when the
	// authenticated user's role does not grant access to the route.
	ErrInsufficientRole = errors.New("insufficient role")
)
