package service

import (
	"context"

	"github.com/avreyes/lingap/models"
)

// AuthService handles credential verification, JWT lifecycle, and the
// bootstrap administrator seeding.
type AuthService interface {
	// ValidateCredentials compares a plaintext password against the
	// stored hash. It returns (nil, nil) on any mismatch, unknown user
	// included; it never returns an error for a wrong password.
	ValidateCredentials(ctx context.Context, username, password string) (*models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Bootstrap creates the configured administrator account when its
	// username does not exist yet. A no-op when no bootstrap password
	// is configured.
	Bootstrap(ctx context.Context) error
}

// UserService handles staff account management and profile lookup.
type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CaseService composes the case lifecycle operations and the dashboard
// aggregation over the storage contract.
type CaseService interface {
	// CreateCase validates the payload, persists the case row, then
	// best-effort persists the selected service rows and the initial
	// note. Returns the created case (not the expanded details).
	CreateCase(ctx context.Context, req models.CreateCaseRequest, actingUserID int64) (models.Case, error)
	// UpdateCase validates and applies a partial update, inserts
	// service rows for newly selected types only, and appends any
	// provided caseNotes as an additional note.
	UpdateCase(ctx context.Context, id int64, req models.UpdateCaseRequest, actingUserID int64) (models.Case, error)
	GetCase(ctx context.Context, id int64) (models.Case, error)
	ListCases(ctx context.Context) ([]models.Case, error)
	DeleteCase(ctx context.Context, id int64) error
	// GetCaseWithDetails joins the case, its services, and its
	// author-resolved notes in application code.
	GetCaseWithDetails(ctx context.Context, id int64) (models.CaseWithDetails, error)
	AddNote(ctx context.Context, caseID int64, req models.AddNoteRequest, actingUserID int64) (models.NoteWithAuthor, error)
	AddService(ctx context.Context, caseID int64, req models.AddServiceRequest) (models.Service, error)
	// GetDashboardStats computes the status counts, the capped
	// recent-case list, and the staff-activity feed.
	GetDashboardStats(ctx context.Context) (models.DashboardStats, error)
}
