// Package store defines the persistence contracts of the application and
// their two interchangeable implementations: a PostgreSQL-backed store
// used in production and a map-backed in-memory store used for
// development and as the test double at the service layer.
package store

import (
	"context"

	"github.com/avreyes/lingap/internal/config"
	"github.com/avreyes/lingap/internal/logger"
)

// Storages aggregates the repository implementations selected at startup.
type Storages struct {
	Users UserRepository
	Cases CaseRepository

	// db is non-nil only when the PostgreSQL backend is selected.
	db *DB
}

// NewStorages selects and constructs the persistence backend from
// configuration. The choice is made once at process startup, never at
// call time: a non-empty database DSN selects PostgreSQL (with schema
// migrations applied), an empty DSN selects the in-memory store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no database DSN configured, using in-memory store")
		mem := NewMemoryStore()
		return &Storages{
			Users: mem,
			Cases: mem,
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		Users: NewUserRepository(db, log),
		Cases: NewCaseRepository(db, log),
		db:    db,
	}, nil
}

// Close releases the database connection pool when the PostgreSQL
// backend is in use. A no-op for the in-memory store.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
