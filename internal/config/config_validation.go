// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lingap Contributors

package config

import "time"

// applyDefaults fills the fields that have a sensible default when no
// source provided a value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "lingap"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = 24 * time.Hour
	}
	if cfg.App.RememberMeDuration == 0 {
		cfg.App.RememberMeDuration = 720 * time.Hour
	}
	if cfg.App.Bootstrap.AdminUsername == "" {
		cfg.App.Bootstrap.AdminUsername = "admin"
	}
	if cfg.App.Bootstrap.AdminFullName == "" {
		cfg.App.Bootstrap.AdminFullName = "Administrator"
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	return nil
}
