// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lingap Contributors

package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT claim set carried by every issued bearer token.
// Besides the registered claims it embeds the staff profile fields the
// browser UI renders without an extra round trip.
type Claims struct {
	jwt.RegisteredClaims

	UserID   int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Position string `json:"position,omitempty"`
	Office   string `json:"office,omitempty"`
	Role     Role   `json:"role"`
}

// Token wraps an issued or parsed JWT together with its compact
// serialized form.
//
// SignedString holds the base64url-encoded header.payload.signature
// string ready to be transmitted in the Authorization header or stored
// in the session cookie. Claims carries the decoded claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON because only the compact form is meaningful
	// outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// LoginResponse is the success body of the login endpoint.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
