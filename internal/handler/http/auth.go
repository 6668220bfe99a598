package http

import (
	"encoding/json"
	"net/http"

	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/service"
	"github.com/avreyes/lingap/internal/utils"
	"github.com/avreyes/lingap/models"
)

// sessionCookieName is the cookie the login endpoint sets alongside the
// JSON token so browser navigation stays authenticated without local
// token plumbing.
const sessionCookieName = "token"

// login verifies credentials and issues a bearer token. A wrong password
// and an unknown username both produce the same generic 401. The token
// travels twice: in the JSON body for API consumers and in a session
// cookie whose lifetime stretches from the token duration to the
// remember-me duration when rememberMe is set.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.WriteJSONMessage(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.ValidateCredentials(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during credential check")
		utils.WriteJSONMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if user == nil {
		log.Debug().Str("username", req.Username).Msg("login rejected")
		utils.WriteJSONMessage(w, service.ErrWrongCredentials.Error(), http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, *user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	cookieDuration := h.cfg.TokenDuration
	if req.RememberMe {
		cookieDuration = h.cfg.RememberMeDuration
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(cookieDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{User: *user, Token: token.SignedString}, http.StatusOK)
}

// logout clears the session cookie. The bearer token itself is stateless
// and stays valid until it expires; there is no server-side revocation.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSONMessage(w, "logged out", http.StatusOK)
}

// me returns the authoritative profile of the authenticated user, read
// from the store rather than echoed from the token claims.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		utils.WriteJSONMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
