// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lingap Contributors

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a user lookup by id or username
	// produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrCaseNotFound is returned when a case lookup, update or delete
	// targets an id that does not exist in the store.
	ErrCaseNotFound = errors.New("case not found")

	// ErrNoFieldsToUpdate is returned when a partial case update carries
	// no fields at all.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
