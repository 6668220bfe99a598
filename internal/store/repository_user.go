package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles staff account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new staff account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.PasswordHash, user.FullName, user.Position, user.Office, string(user.Role))

	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.PasswordHash,
		&created.FullName, &created.Position, &created.Office, &created.Role, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		case "":
			return models.User{}, err
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetUserByID retrieves a staff account by its id.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.scanUser(ctx, r.db.QueryRowContext(ctx, getUserByID, id))
}

// GetUserByUsername retrieves a staff account by its unique username.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.scanUser(ctx, r.db.QueryRowContext(ctx, getUserByUsername, username))
}

// ListUsers returns all staff accounts ordered newest-created-first.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.Username, &u.PasswordHash,
			&u.FullName, &u.Position, &u.Office, &u.Role, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *userRepository) scanUser(ctx context.Context, row *sql.Row) (models.User, error) {
	log := logger.FromContext(ctx)

	var u models.User
	if err := row.Scan(&u.UserID, &u.Username, &u.PasswordHash,
		&u.FullName, &u.Position, &u.Office, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.scanUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return u, nil
}
