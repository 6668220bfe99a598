package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/models"
)

// caseRepository is the PostgreSQL-backed implementation of [CaseRepository].
// Cascading deletion of services and notes is enforced at the statement
// level through the ON DELETE CASCADE foreign keys declared in the schema
// migrations, so DeleteCase issues a single parent delete.
type caseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCaseRepository constructs a [CaseRepository] backed by the provided
// database connection and logger.
func NewCaseRepository(db *DB, logger *logger.Logger) CaseRepository {
	logger.Debug().Msg("creating case repository")
	return &caseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCase persists a new case row and returns the fully populated
// [models.Case] with server-assigned fields (CaseID, CreatedAt, UpdatedAt).
func (r *caseRepository) CreateCase(ctx context.Context, c models.Case) (models.Case, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCase,
		c.VictimName, nullableInt(c.VictimAge), c.VictimGender, c.Barangay,
		c.IncidentDate, c.IncidentType, c.IncidentLocation,
		c.PerpetratorName, c.PerpetratorRelationship, c.EncoderName,
		string(c.Status), string(c.Priority))

	created, err := scanCase(row)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.CreateCase").Msg("error creating case")
		return models.Case{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetCase retrieves a case by id. Returns [ErrCaseNotFound] when no row
// matches.
func (r *caseRepository) GetCase(ctx context.Context, id int64) (models.Case, error) {
	log := logger.FromContext(ctx)

	c, err := scanCase(r.db.QueryRowContext(ctx, getCase, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Case{}, ErrCaseNotFound
		}

		log.Err(err).Str("func", "*caseRepository.GetCase").Msg("error: scanning error")
		return models.Case{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return c, nil
}

// ListCases returns all cases ordered newest-created-first.
func (r *caseRepository) ListCases(ctx context.Context) ([]models.Case, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCases)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.ListCases").Msg("error querying cases")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	cases := make([]models.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			log.Err(err).Str("func", "*caseRepository.ListCases").Msg("error: scanning error")
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, rows.Err()
}

// UpdateCase applies the non-nil fields of update through a dynamically
// built UPDATE statement and returns the refreshed row.
// Returns [ErrCaseNotFound] when the case does not exist.
func (r *caseRepository) UpdateCase(ctx context.Context, id int64, update models.CaseUpdate) (models.Case, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCaseUpdateQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.UpdateCase").Msg("error building update query")
		return models.Case{}, err
	}

	updated, err := scanCase(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Case{}, ErrCaseNotFound
		}

		log.Err(err).Str("func", "*caseRepository.UpdateCase").Msg("error updating case")
		return models.Case{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteCase removes a case row. Dependent service and note rows are
// removed by the engine through ON DELETE CASCADE.
// Returns [ErrCaseNotFound] when the case does not exist.
func (r *caseRepository) DeleteCase(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteCase, id)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.DeleteCase").Msg("error deleting case")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCaseNotFound
	}

	return nil
}

// AddService persists one service row for a case and returns it with
// server-assigned fields.
func (r *caseRepository) AddService(ctx context.Context, svc models.Service) (models.Service, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, addService,
		svc.CaseID, svc.Type, svc.DateProvided, svc.Provider, svc.Notes)

	var created models.Service
	if err := row.Scan(&created.ServiceID, &created.CaseID, &created.Type,
		&created.DateProvided, &created.Provider, &created.Notes, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*caseRepository.AddService").Msg("error adding service")
		return models.Service{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListServicesByCase returns the services of a case ordered
// newest-dateProvided-first.
func (r *caseRepository) ListServicesByCase(ctx context.Context, caseID int64) ([]models.Service, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listServicesByCase, caseID)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.ListServicesByCase").Msg("error querying services")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ServiceID, &s.CaseID, &s.Type,
			&s.DateProvided, &s.Provider, &s.Notes, &s.CreatedAt); err != nil {
			log.Err(err).Str("func", "*caseRepository.ListServicesByCase").Msg("error: scanning error")
			return nil, err
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

// AddNote persists one note row for a case and returns it with
// server-assigned fields.
func (r *caseRepository) AddNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, addNote, note.CaseID, note.AuthorID, note.Content)

	var created models.Note
	if err := row.Scan(&created.NoteID, &created.CaseID, &created.AuthorID,
		&created.Content, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*caseRepository.AddNote").Msg("error adding note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListNotesByCase returns the notes of a case ordered newest-created-first.
func (r *caseRepository) ListNotesByCase(ctx context.Context, caseID int64) ([]models.Note, error) {
	return r.queryNotes(ctx, listNotesByCase, caseID)
}

// ListRecentNotes returns at most limit notes across all cases, ordered
// newest-created-first. Used by the dashboard's staff-activity feed.
func (r *caseRepository) ListRecentNotes(ctx context.Context, limit int) ([]models.Note, error) {
	return r.queryNotes(ctx, listRecentNotes, limit)
}

func (r *caseRepository) queryNotes(ctx context.Context, query string, arg any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.queryNotes").Msg("error querying notes")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.NoteID, &n.CaseID, &n.AuthorID, &n.Content, &n.CreatedAt); err != nil {
			log.Err(err).Str("func", "*caseRepository.queryNotes").Msg("error: scanning error")
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (models.Case, error) {
	var (
		c   models.Case
		age sql.NullInt64
	)

	if err := row.Scan(&c.CaseID, &c.VictimName, &age, &c.VictimGender, &c.Barangay,
		&c.IncidentDate, &c.IncidentType, &c.IncidentLocation,
		&c.PerpetratorName, &c.PerpetratorRelationship, &c.EncoderName,
		&c.Status, &c.Priority, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return models.Case{}, err
	}

	if age.Valid {
		v := int(age.Int64)
		c.VictimAge = &v
	}

	return c, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
