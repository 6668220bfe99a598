package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/store"
	"github.com/avreyes/lingap/internal/validators"
	"github.com/avreyes/lingap/models"
)

func newTestCaseService(t *testing.T) (CaseService, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	svc := NewCaseService(mem, mem, validators.NewCaseValidator(), logger.Nop())
	return svc, mem
}

func seedUser(t *testing.T, mem *store.MemoryStore, username, fullName string) models.User {
	t.Helper()
	user, err := mem.CreateUser(context.Background(), models.User{
		Username:     username,
		PasswordHash: "hash",
		FullName:     fullName,
		Role:         models.RoleEditor,
	})
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user
}

func validCreateRequest() models.CreateCaseRequest {
	return models.CreateCaseRequest{
		VictimName:      "Maria Santos",
		IncidentDate:    "2023-12-15",
		IncidentType:    "Physical abuse",
		PerpetratorName: "Pedro Santos",
		EncoderName:     "Admin User",
		Status:          models.StatusActive,
	}
}

func TestCreateCase_RoundTripWithServicesAndNote(t *testing.T) {
	svc, mem := newTestCaseService(t)
	ctx := context.Background()
	author := seedUser(t, mem, "admin", "Admin User")

	req := validCreateRequest()
	req.Services = []models.ServiceSelection{
		{Type: "medical", Selected: true},
		{Type: "legal", Selected: true},
		{Type: "counseling", Selected: false},
	}
	req.CaseNotes = "initial assessment"

	created, err := svc.CreateCase(ctx, req, author.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CaseID == 0 {
		t.Fatal("expected a non-zero id")
	}
	if created.Priority != models.PriorityMedium {
		t.Errorf("expected default priority Medium, got %s", created.Priority)
	}

	details, err := svc.GetCaseWithDetails(ctx, created.CaseID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(details.Services) != 2 {
		t.Fatalf("expected 2 services from selected checkboxes, got %d", len(details.Services))
	}
	for _, s := range details.Services {
		if s.Provider != req.EncoderName {
			t.Errorf("expected service attributed to encoder, got %q", s.Provider)
		}
	}

	if len(details.Notes) != 1 {
		t.Fatalf("expected 1 initial note, got %d", len(details.Notes))
	}
	note := details.Notes[0]
	if note.Content != "initial assessment" {
		t.Errorf("unexpected note content: %q", note.Content)
	}
	if note.Author.UserID != author.UserID || note.Author.FullName != author.FullName {
		t.Errorf("expected author resolved to acting user, got %+v", note.Author)
	}
}

func TestCreateCase_OtherServicesBecomesRow(t *testing.T) {
	svc, _ := newTestCaseService(t)
	ctx := context.Background()

	req := validCreateRequest()
	req.OtherServices = "temporary shelter"

	created, err := svc.CreateCase(ctx, req, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	details, _ := svc.GetCaseWithDetails(ctx, created.CaseID)
	if len(details.Services) != 1 || details.Services[0].Type != "temporary shelter" {
		t.Errorf("expected one service of type 'temporary shelter', got %+v", details.Services)
	}
}

func TestCreateCase_ValidationFailure(t *testing.T) {
	svc, mem := newTestCaseService(t)
	ctx := context.Background()

	req := validCreateRequest()
	req.VictimName = ""
	req.IncidentDate = "not-a-date"

	_, err := svc.CreateCase(ctx, req, 1)

	verr, ok := validators.AsValidationError(err)
	if !ok {
		t.Fatalf("expected a validation error, got %v", err)
	}

	fields := make(map[string]bool)
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	if !fields["victimName"] || !fields["incidentDate"] {
		t.Errorf("expected victimName and incidentDate reported, got %+v", verr.Fields)
	}

	// no partial writes
	cases, _ := mem.ListCases(ctx)
	if len(cases) != 0 {
		t.Errorf("expected no cases stored after validation failure, got %d", len(cases))
	}
}

func TestUpdateCase_StatusTransitionKeepsOtherFields(t *testing.T) {
	svc, _ := newTestCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, validCreateRequest(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status := models.StatusClosed
	updated, err := svc.UpdateCase(ctx, created.CaseID, models.UpdateCaseRequest{Status: &status}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Status != models.StatusClosed {
		t.Errorf("expected status closed, got %s", updated.Status)
	}
	if updated.VictimName != created.VictimName || updated.IncidentType != created.IncidentType {
		t.Errorf("expected prior fields unchanged, got %+v", updated)
	}
}

func TestUpdateCase_InsertsOnlyNewServiceTypes(t *testing.T) {
	svc, _ := newTestCaseService(t)
	ctx := context.Background()

	req := validCreateRequest()
	req.Services = []models.ServiceSelection{{Type: "medical", Selected: true}}

	created, err := svc.CreateCase(ctx, req, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// re-submitting medical plus a new legal selection must add only legal
	_, err = svc.UpdateCase(ctx, created.CaseID, models.UpdateCaseRequest{
		Services: []models.ServiceSelection{
			{Type: "medical", Selected: true},
			{Type: "legal", Selected: true},
		},
	}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	details, _ := svc.GetCaseWithDetails(ctx, created.CaseID)
	if len(details.Services) != 2 {
		t.Fatalf("expected 2 services after dedup, got %d", len(details.Services))
	}

	counts := make(map[string]int)
	for _, s := range details.Services {
		counts[s.Type]++
	}
	if counts["medical"] != 1 || counts["legal"] != 1 {
		t.Errorf("unexpected service rows: %+v", details.Services)
	}
}

func TestUpdateCase_EmptyPayloadRejected(t *testing.T) {
	svc, _ := newTestCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, validCreateRequest(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.UpdateCase(ctx, created.CaseID, models.UpdateCaseRequest{}, 1)
	if !errors.Is(err, store.ErrNoFieldsToUpdate) {
		t.Errorf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestUpdateCase_NotFound(t *testing.T) {
	svc, _ := newTestCaseService(t)

	status := models.StatusClosed
	_, err := svc.UpdateCase(context.Background(), 42, models.UpdateCaseRequest{Status: &status}, 1)
	if !errors.Is(err, store.ErrCaseNotFound) {
		t.Errorf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestGetCaseWithDetails_UnknownAuthorFallback(t *testing.T) {
	svc, mem := newTestCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, validCreateRequest(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// note authored by a user id that was never created
	if _, err := mem.AddNote(ctx, models.Note{CaseID: created.CaseID, AuthorID: 99, Content: "orphaned"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	details, err := svc.GetCaseWithDetails(ctx, created.CaseID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(details.Notes))
	}
	if details.Notes[0].Author != models.UnknownAuthor {
		t.Errorf("expected the unknown-author fallback, got %+v", details.Notes[0].Author)
	}
}

func TestAddNote_CaseMustExist(t *testing.T) {
	svc, _ := newTestCaseService(t)

	_, err := svc.AddNote(context.Background(), 42, models.AddNoteRequest{Content: "note"}, 1)
	if !errors.Is(err, store.ErrCaseNotFound) {
		t.Errorf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestGetDashboardStats_CountsAndCaps(t *testing.T) {
	svc, mem := newTestCaseService(t)
	ctx := context.Background()
	author := seedUser(t, mem, "admin", "Admin User")

	statuses := []models.CaseStatus{
		models.StatusActive, models.StatusActive, models.StatusActive,
		models.StatusPending, models.StatusPending,
		models.StatusClosed,
		models.StatusActive,
	}
	var lastCaseID int64
	for i, status := range statuses {
		req := validCreateRequest()
		req.Status = status
		if i == len(statuses)-1 {
			req.CaseNotes = "latest case opened"
		}
		created, err := svc.CreateCase(ctx, req, author.UserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lastCaseID = created.CaseID
	}

	stats, err := svc.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalCases != 7 {
		t.Errorf("expected 7 total cases, got %d", stats.TotalCases)
	}
	if stats.TotalCases != stats.ActiveCases+stats.PendingCases+stats.ClosedCases {
		t.Errorf("status counts do not add up: %+v", stats)
	}
	if stats.ActiveCases != 4 || stats.PendingCases != 2 || stats.ClosedCases != 1 {
		t.Errorf("unexpected partition: %+v", stats)
	}

	if len(stats.RecentCases) != 5 {
		t.Fatalf("expected recent cases capped at 5, got %d", len(stats.RecentCases))
	}
	if stats.RecentCases[0].CaseID != lastCaseID {
		t.Errorf("expected the newest case first, got id %d", stats.RecentCases[0].CaseID)
	}

	if len(stats.RecentActivity) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(stats.RecentActivity))
	}
	activity := stats.RecentActivity[0]
	if activity.AuthorID != author.UserID || activity.AuthorName != author.FullName {
		t.Errorf("expected activity attributed to author, got %+v", activity)
	}
	if activity.CaseID != lastCaseID || activity.VictimName != "Maria Santos" {
		t.Errorf("expected activity to reference its parent case, got %+v", activity)
	}
}

func TestDeleteCase_ThenGetReturnsNotFound(t *testing.T) {
	svc, _ := newTestCaseService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, validCreateRequest(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteCase(ctx, created.CaseID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.GetCaseWithDetails(ctx, created.CaseID); !errors.Is(err, store.ErrCaseNotFound) {
		t.Errorf("expected ErrCaseNotFound after delete, got %v", err)
	}
}
