package http

import (
	"net/http"

	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/utils"
	"github.com/avreyes/lingap/models"
)

// requireRole gates a route group to users whose token carries the given
// role. It must run after the auth middleware; a request without claims
// in its context is rejected as unauthenticated rather than forbidden.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				utils.WriteJSONMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if claims.Role != role {
				log.Debug().
					Int64("id", claims.UserID).
					Str("role", string(claims.Role)).
					Msg("route requires a different role")
				utils.WriteJSONMessage(w, ErrInsufficientRole.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
