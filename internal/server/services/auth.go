// Package services contains server-side business logic: dial registration
// and authentication, and access to the caller's secrets.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/dialkeeper/internal/angles"
	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/dmitrijs2005/dialkeeper/internal/logging"
	"github.com/dmitrijs2005/dialkeeper/internal/server/auth"
	"github.com/dmitrijs2005/dialkeeper/internal/server/config"
	"github.com/dmitrijs2005/dialkeeper/internal/server/models"
	"github.com/dmitrijs2005/dialkeeper/internal/server/repositories/repomanager"
)

// AuthService registers identities and decides authentication attempts.
// It holds no per-request state.
type AuthService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	matcher                     *angles.Matcher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	logger                      logging.Logger
}

// NewAuthService constructs an AuthService using repositories and server
// config. It fails when the configured tolerance is out of range.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) (*AuthService, error) {
	matcher, err := angles.NewMatcher(cfg.Tolerance)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		matcher:                     matcher,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		logger:                      logger.With("module", "auth_service"),
	}, nil
}

// Register validates the submission and stores a new user. A taken email
// is reported as common.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, name, email string, rawAngles []any) (*models.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrInvalidInput)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrInvalidInput)
	}
	credential, err := angles.Parse(rawAngles)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, &models.User{Name: name, Email: email, Credential: credential})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: error creating user: %w", common.ErrStorage, err)
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Authenticate checks the submitted angles against the user's stored
// credential. Both an unknown email and a mismatch wrap common.ErrAuthFailed.
func (s *AuthService) Authenticate(ctx context.Context, email string, rawAngles []any) (*models.VerifiedUser, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrInvalidInput)
	}
	submitted, err := angles.Parse(rawAngles)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			s.logger.Info(ctx, "authentication failed", "reason", "user_not_found")
			return nil, common.ErrUserNotFound
		case errors.Is(err, common.ErrDataCorrupt):
			s.logger.Error(ctx, "stored credential is corrupt", "error", err)
			return nil, err
		default:
			return nil, fmt.Errorf("%w: error loading user: %w", common.ErrStorage, err)
		}
	}

	if !s.matcher.Match(submitted, user.Credential) {
		s.logger.Info(ctx, "authentication failed", "reason", "tolerance_exceeded", "user_id", user.ID)
		return nil, common.ErrToleranceExceeded
	}

	s.logger.Info(ctx, "user authenticated", "user_id", user.ID)
	return user.Public(), nil
}

// IssueToken mints an access token for a verified user.
func (s *AuthService) IssueToken(user *models.VerifiedUser) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return token, nil
}

// VerifyToken returns the user id carried by a valid access token.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// Tolerance returns the configured matching tolerance in degrees.
func (s *AuthService) Tolerance() float64 {
	return s.matcher.Tolerance()
}
