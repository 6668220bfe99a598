package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/models"
)

func newTestCaseRepo(t *testing.T) (*caseRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &caseRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func caseRows(id int64, victim string, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.
		NewRows([]string{"id", "victim_name", "victim_age", "victim_gender", "barangay",
			"incident_date", "incident_type", "incident_location",
			"perpetrator_name", "perpetrator_relationship", "encoder_name",
			"status", "priority", "created_at", "updated_at"}).
		AddRow(id, victim, nil, "", "", now, "Physical abuse", "", "Pedro Santos", "", "Admin User", status, "Medium", now, now)
}

func TestCreateCase_Success(t *testing.T) {
	repo, mock, db := newTestCaseRepo(t)
	defer db.Close()

	c := models.Case{
		VictimName:      "Maria Santos",
		IncidentDate:    time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
		IncidentType:    "Physical abuse",
		PerpetratorName: "Pedro Santos",
		EncoderName:     "Admin User",
		Status:          models.StatusActive,
		Priority:        models.PriorityMedium,
	}

	mock.ExpectQuery("INSERT INTO cases").
		WithArgs(c.VictimName, sql.NullInt64{}, c.VictimGender, c.Barangay,
			c.IncidentDate, c.IncidentType, c.IncidentLocation,
			c.PerpetratorName, c.PerpetratorRelationship, c.EncoderName,
			"active", "Medium").
		WillReturnRows(caseRows(1, c.VictimName, "active"))

	created, err := repo.CreateCase(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CaseID != 1 {
		t.Errorf("expected CaseID=1, got %d", created.CaseID)
	}
	if created.VictimAge != nil {
		t.Errorf("expected nil VictimAge, got %v", *created.VictimAge)
	}
}

func TestGetCase_NotFound(t *testing.T) {
	repo, mock, db := newTestCaseRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM cases").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCase(context.Background(), 42)
	if !errors.Is(err, ErrCaseNotFound) {
		t.Errorf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestUpdateCase_NotFound(t *testing.T) {
	repo, mock, db := newTestCaseRepo(t)
	defer db.Close()

	status := models.StatusClosed
	mock.ExpectQuery("UPDATE cases").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateCase(context.Background(), 42, models.CaseUpdate{Status: &status})
	if !errors.Is(err, ErrCaseNotFound) {
		t.Errorf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestUpdateCase_Success(t *testing.T) {
	repo, mock, db := newTestCaseRepo(t)
	defer db.Close()

	status := models.StatusClosed
	mock.ExpectQuery("UPDATE cases").
		WillReturnRows(caseRows(1, "Maria Santos", "closed"))

	updated, err := repo.UpdateCase(context.Background(), 1, models.CaseUpdate{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusClosed {
		t.Errorf("expected status closed, got %s", updated.Status)
	}
}

func TestDeleteCase_Success(t *testing.T) {
	repo, mock, db := newTestCaseRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM cases").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteCase(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteCase_NotFound(t *testing.T) {
	repo, mock, db := newTestCaseRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM cases").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCase(context.Background(), 42)
	if !errors.Is(err, ErrCaseNotFound) {
		t.Errorf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestAddService_Success(t *testing.T) {
	repo, mock, db := newTestCaseRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "case_id", "type", "date_provided", "provider", "notes", "created_at"}).
		AddRow(1, 1, "medical", now, "DSWD", "", now)

	mock.ExpectQuery("INSERT INTO services").
		WithArgs(int64(1), "medical", now, "DSWD", "").
		WillReturnRows(rows)

	svc, err := repo.AddService(context.Background(), models.Service{
		CaseID:       1,
		Type:         "medical",
		DateProvided: now,
		Provider:     "DSWD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.ServiceID != 1 || svc.Type != "medical" {
		t.Errorf("unexpected service: %+v", svc)
	}
}

func TestListRecentNotes_PassesLimit(t *testing.T) {
	repo, mock, db := newTestCaseRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "case_id", "author_id", "content", "created_at"}).
		AddRow(2, 1, 1, "second", now).
		AddRow(1, 1, 1, "first", now)

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WithArgs(5).
		WillReturnRows(rows)

	notes, err := repo.ListRecentNotes(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
}
