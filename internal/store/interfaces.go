package store

import (
	"context"

	"github.com/avreyes/lingap/models"
)

// UserRepository is the storage contract for staff accounts. Accounts are
// created by the bootstrap routine or administratively and are never
// updated or deleted.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CaseRepository is the storage contract for cases and their dependent
// services and notes. Both implementations (PostgreSQL and in-memory)
// must produce identical observable results for identical operation
// sequences; this is the interchangeability contract that lets the
// in-memory store stand in for the relational one in tests.
//
// Lookups on missing ids return [ErrCaseNotFound]; they never panic and
// never surface a driver error for the plain not-found condition.
// Referential integrity of dependent writes is a caller responsibility:
// the repository does not re-validate foreign keys beyond what the
// underlying engine enforces.
type CaseRepository interface {
	CreateCase(ctx context.Context, c models.Case) (models.Case, error)
	GetCase(ctx context.Context, id int64) (models.Case, error)
	// ListCases returns all cases ordered newest-created-first.
	ListCases(ctx context.Context) ([]models.Case, error)
	// UpdateCase applies the non-nil fields of update and refreshes
	// UpdatedAt. Returns ErrCaseNotFound if the case does not exist.
	UpdateCase(ctx context.Context, id int64, update models.CaseUpdate) (models.Case, error)
	// DeleteCase removes the case and cascades to its services and notes.
	// Returns ErrCaseNotFound if the case does not exist.
	DeleteCase(ctx context.Context, id int64) error

	AddService(ctx context.Context, svc models.Service) (models.Service, error)
	// ListServicesByCase returns services ordered newest-dateProvided-first.
	ListServicesByCase(ctx context.Context, caseID int64) ([]models.Service, error)

	AddNote(ctx context.Context, note models.Note) (models.Note, error)
	// ListNotesByCase returns notes ordered newest-created-first.
	ListNotesByCase(ctx context.Context, caseID int64) ([]models.Note, error)
	// ListRecentNotes returns at most limit notes across all cases,
	// ordered newest-created-first.
	ListRecentNotes(ctx context.Context, limit int) ([]models.Note, error)
}
