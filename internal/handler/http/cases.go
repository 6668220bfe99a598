package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/utils"
	"github.com/avreyes/lingap/models"
)

// caseIDFromRequest parses the {id} URL parameter. A non-numeric id is
// reported to the client as a 404 rather than a 400: from the API
// consumer's perspective "/api/cases/abc" names a case that does not
// exist.
func caseIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) listCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.services.CaseService.ListCases(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, cases, http.StatusOK)
}

func (h *Handler) createCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	claims, _ := utils.GetClaimsFromContext(ctx)

	created, err := h.services.CaseService.CreateCase(ctx, req, claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getCase returns the case expanded with its services and
// author-resolved notes.
func (h *Handler) getCase(w http.ResponseWriter, r *http.Request) {
	id, ok := caseIDFromRequest(r)
	if !ok {
		utils.WriteJSONMessage(w, "case not found", http.StatusNotFound)
		return
	}

	details, err := h.services.CaseService.GetCaseWithDetails(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) updateCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := caseIDFromRequest(r)
	if !ok {
		utils.WriteJSONMessage(w, "case not found", http.StatusNotFound)
		return
	}

	var req models.UpdateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	claims, _ := utils.GetClaimsFromContext(ctx)

	updated, err := h.services.CaseService.UpdateCase(ctx, id, req, claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCase(w http.ResponseWriter, r *http.Request) {
	id, ok := caseIDFromRequest(r)
	if !ok {
		utils.WriteJSONMessage(w, "case not found", http.StatusNotFound)
		return
	}

	if err := h.services.CaseService.DeleteCase(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSONMessage(w, "case deleted", http.StatusOK)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := caseIDFromRequest(r)
	if !ok {
		utils.WriteJSONMessage(w, "case not found", http.StatusNotFound)
		return
	}

	var req models.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	claims, _ := utils.GetClaimsFromContext(ctx)

	note, err := h.services.CaseService.AddNote(ctx, id, req, claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) addService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := caseIDFromRequest(r)
	if !ok {
		utils.WriteJSONMessage(w, "case not found", http.StatusNotFound)
		return
	}

	var req models.AddServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	svc, err := h.services.CaseService.AddService(ctx, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, svc, http.StatusCreated)
}
