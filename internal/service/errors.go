// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lingap Contributors

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("invalid username or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrBootstrapFailed = errors.New("bootstrap of administrator account failed")
)
