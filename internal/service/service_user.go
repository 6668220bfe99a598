package service

import (
	"context"
	"fmt"

	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/store"
	"github.com/avreyes/lingap/internal/utils"
	"github.com/avreyes/lingap/internal/validators"
	"github.com/avreyes/lingap/models"
)

// userService is the concrete implementation of UserService. Staff
// accounts are created administratively and never updated or deleted.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateUser creates a staff account from an administrative request.
// The plaintext password is hashed with bcrypt before storage and the
// role defaults to editor when empty.
//
// Returns:
//   - ErrInvalidDataProvided when the role is not a known value.
//   - store.ErrUsernameAlreadyExists when the username is taken.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleEditor
	}
	if !role.Valid() {
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Position:     req.Position,
		Office:       req.Office,
		Role:         role,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// GetUser returns the staff account with the given id.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, id)
}

// ListUsers returns all staff accounts ordered newest-created-first.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}
