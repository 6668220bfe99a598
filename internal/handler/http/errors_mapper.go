package http

import (
	"errors"
	"net/http"

	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/service"
	"github.com/avreyes/lingap/internal/store"
	"github.com/avreyes/lingap/internal/utils"
	"github.com/avreyes/lingap/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrCaseNotFound:          http.StatusNotFound,
	store.ErrNoFieldsToUpdate:      http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// validationErrorBody is the 400 response shape for payload validation
// failures: a human-readable message plus per-field detail.
type validationErrorBody struct {
	Message string                   `json:"message"`
	Fields  []validators.FieldError  `json:"fields"`
}

// writeError translates a service or store error into the JSON error
// surface of the API. Validation errors become a 400 with field-level
// detail; sentinel errors map through errorStatusMap; anything else is
// logged and surfaced as a generic 500 without leaking internals.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if ve, ok := validators.AsValidationError(err); ok {
		log.Debug().Err(err).Msg("payload validation failed")
		utils.WriteJSON(w, validationErrorBody{Message: ve.Error(), Fields: ve.Fields}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		utils.WriteJSONMessage(w, http.StatusText(http.StatusInternalServerError), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteJSONMessage(w, err.Error(), status)
}
