package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avreyes/lingap/internal/config"
	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/store"
	"github.com/avreyes/lingap/internal/utils"
	"github.com/avreyes/lingap/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification with bcrypt and the JWT token
// lifecycle, using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to look up and seed users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bootstrap holds the seed credentials of the initial administrator.
	bootstrap config.Bootstrap

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bootstrap:      cfg.Bootstrap,
		logger:         logger,
	}
}

// ValidateCredentials authenticates a staff member.
//
// It looks up the account by username and compares the supplied plaintext
// password against the stored bcrypt hash. An unknown username and a
// wrong password are indistinguishable to the caller.
//
// Returns:
//   - (user, nil) on an exact match.
//   - (nil, nil) on any mismatch. A wrong password is never an error.
//   - (nil, err) only for unexpected storage failures.
func (a *authService) ValidateCredentials(ctx context.Context, username, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return nil, nil
	}

	user, err := a.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}

		log.Err(err).Str("username", username).Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		log.Debug().Str("username", username).Msg("wrong password")
		return nil, nil
	}

	return &user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the staff profile claims,
// and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Bootstrap seeds the configured administrator account at startup.
//
// A no-op when no bootstrap password is configured or when the username
// already exists; any other outcome is wrapped in ErrBootstrapFailed.
func (a *authService) Bootstrap(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.bootstrap.AdminPassword == "" {
		log.Debug().Msg("no bootstrap password configured, skipping admin seeding")
		return nil
	}

	_, err := a.userRepository.GetUserByUsername(ctx, a.bootstrap.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("%w: %w", ErrBootstrapFailed, err)
	}

	hash, err := utils.HashPassword(a.bootstrap.AdminPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrapFailed, err)
	}

	admin, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     a.bootstrap.AdminUsername,
		PasswordHash: hash,
		FullName:     a.bootstrap.AdminFullName,
		Role:         models.RoleAdministrator,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrapFailed, err)
	}

	log.Info().Int64("id", admin.UserID).Str("username", admin.Username).Msg("bootstrap administrator created")
	return nil
}
