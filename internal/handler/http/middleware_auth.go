package http

import (
	"context"
	"net/http"

	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/service"
	"github.com/avreyes/lingap/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, falling
// back to the session cookie set at login, validates it via
// [service.AuthService.ParseToken], and — on success — stores the decoded
// claims in the request context under [utils.ClaimsCtxKey] before
// delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when no credentials
// are present, the header cannot be parsed, or the token is expired or
// otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteJSONMessage(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			utils.WriteJSONMessage(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		// Store the decoded claims in the context so downstream handlers
		// can identify the acting user without re-parsing the token.
		ctx = context.WithValue(ctx, utils.ClaimsCtxKey, token.Claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest extracts the compact token string from the request,
// preferring the "Authorization" header over the session cookie.
func tokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return tokenString, nil
	}

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrMissingCredentials
	}
	return cookie.Value, nil
}
