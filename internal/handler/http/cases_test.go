package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/avreyes/lingap/models"
)

func validCasePayload() models.CreateCaseRequest {
	return models.CreateCaseRequest{
		VictimName:      "Maria Santos",
		IncidentDate:    "2023-12-15",
		IncidentType:    "Physical abuse",
		PerpetratorName: "Pedro Santos",
		EncoderName:     "Admin User",
		Status:          models.StatusActive,
	}
}

func TestCaseLifecycleScenario(t *testing.T) {
	api := newTestAPI(t)
	api.seedUser(t, "admin", "correct horse", models.RoleAdministrator)
	token := api.login(t, "admin", "correct horse")

	// create
	rec := api.request(t, http.MethodPost, "/api/cases", token, validCasePayload())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created models.Case
	decodeBody(t, rec, &created)
	if created.CaseID == 0 {
		t.Fatal("expected a numeric id")
	}
	if created.Status != models.StatusActive {
		t.Errorf("expected status active, got %s", created.Status)
	}

	target := fmt.Sprintf("/api/cases/%d", created.CaseID)

	// close it
	status := models.StatusClosed
	rec = api.request(t, http.MethodPut, target, token, models.UpdateCaseRequest{Status: &status})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated models.Case
	decodeBody(t, rec, &updated)
	if updated.Status != models.StatusClosed {
		t.Errorf("expected status closed, got %s", updated.Status)
	}
	if updated.VictimName != created.VictimName || updated.IncidentType != created.IncidentType {
		t.Errorf("expected prior fields unchanged, got %+v", updated)
	}

	// delete
	rec = api.request(t, http.MethodDelete, target, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// gone
	rec = api.request(t, http.MethodGet, target, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestCreateCase_ValidationFailure(t *testing.T) {
	api := newTestAPI(t)
	api.seedUser(t, "admin", "correct horse", models.RoleAdministrator)
	token := api.login(t, "admin", "correct horse")

	payload := validCasePayload()
	payload.VictimName = ""

	rec := api.request(t, http.MethodPost, "/api/cases", token, payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body validationErrorBody
	decodeBody(t, rec, &body)
	if body.Message == "" {
		t.Error("expected a message")
	}

	var found bool
	for _, f := range body.Fields {
		if f.Field == "victimName" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected victimName in the field detail, got %+v", body.Fields)
	}
}

func TestGetCase_ExpandsDetails(t *testing.T) {
	api := newTestAPI(t)
	seeded := api.seedUser(t, "admin", "correct horse", models.RoleAdministrator)
	token := api.login(t, "admin", "correct horse")

	payload := validCasePayload()
	payload.Services = []models.ServiceSelection{
		{Type: "medical", Selected: true},
		{Type: "legal", Selected: true},
	}
	payload.CaseNotes = "initial assessment"

	rec := api.request(t, http.MethodPost, "/api/cases", token, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created models.Case
	decodeBody(t, rec, &created)

	rec = api.request(t, http.MethodGet, fmt.Sprintf("/api/cases/%d", created.CaseID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var details models.CaseWithDetails
	decodeBody(t, rec, &details)
	if len(details.Services) != 2 {
		t.Errorf("expected 2 services, got %d", len(details.Services))
	}
	if len(details.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(details.Notes))
	}
	if details.Notes[0].Author.UserID != seeded.UserID {
		t.Errorf("expected author resolved to acting user, got %+v", details.Notes[0].Author)
	}
}

func TestGetCase_NonNumericID(t *testing.T) {
	api := newTestAPI(t)
	api.seedUser(t, "admin", "correct horse", models.RoleAdministrator)
	token := api.login(t, "admin", "correct horse")

	rec := api.request(t, http.MethodGet, "/api/cases/abc", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAddNote_ReturnsResolvedAuthor(t *testing.T) {
	api := newTestAPI(t)
	seeded := api.seedUser(t, "admin", "correct horse", models.RoleAdministrator)
	token := api.login(t, "admin", "correct horse")

	rec := api.request(t, http.MethodPost, "/api/cases", token, validCasePayload())
	var created models.Case
	decodeBody(t, rec, &created)

	rec = api.request(t, http.MethodPost, fmt.Sprintf("/api/cases/%d/notes", created.CaseID), token,
		models.AddNoteRequest{Content: "follow-up visit done"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var note models.NoteWithAuthor
	decodeBody(t, rec, &note)
	if note.Content != "follow-up visit done" {
		t.Errorf("unexpected content: %q", note.Content)
	}
	if note.Author.UserID != seeded.UserID || note.Author.FullName != seeded.FullName {
		t.Errorf("expected resolved author, got %+v", note.Author)
	}
}

func TestAddService_ValidationFailure(t *testing.T) {
	api := newTestAPI(t)
	api.seedUser(t, "admin", "correct horse", models.RoleAdministrator)
	token := api.login(t, "admin", "correct horse")

	rec := api.request(t, http.MethodPost, "/api/cases", token, validCasePayload())
	var created models.Case
	decodeBody(t, rec, &created)

	rec = api.request(t, http.MethodPost, fmt.Sprintf("/api/cases/%d/services", created.CaseID), token,
		models.AddServiceRequest{Type: "medical", DateProvided: "soon", Provider: "DSWD"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestDashboard_CountsAddUp(t *testing.T) {
	api := newTestAPI(t)
	api.seedUser(t, "admin", "correct horse", models.RoleAdministrator)
	token := api.login(t, "admin", "correct horse")

	for _, status := range []models.CaseStatus{
		models.StatusActive, models.StatusPending, models.StatusPending, models.StatusClosed,
	} {
		payload := validCasePayload()
		payload.Status = status
		if rec := api.request(t, http.MethodPost, "/api/cases", token, payload); rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
	}

	rec := api.request(t, http.MethodGet, "/api/dashboard", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var stats models.DashboardStats
	decodeBody(t, rec, &stats)
	if stats.TotalCases != 4 {
		t.Errorf("expected 4 total cases, got %d", stats.TotalCases)
	}
	if stats.TotalCases != stats.ActiveCases+stats.PendingCases+stats.ClosedCases {
		t.Errorf("status counts do not add up: %+v", stats)
	}
	if len(stats.RecentCases) != 4 {
		t.Errorf("expected all 4 cases in the recent list, got %d", len(stats.RecentCases))
	}
}

func TestListCases_RequiresAuth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.request(t, http.MethodGet, "/api/cases", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
