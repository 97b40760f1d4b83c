package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/dmitrijs2005/dialkeeper/internal/dbx"
	"github.com/dmitrijs2005/dialkeeper/internal/logging"
	"github.com/dmitrijs2005/dialkeeper/internal/server/models"
	"github.com/dmitrijs2005/dialkeeper/internal/server/repositories/repomanager"
)

// SecretService exposes a user's own secrets. The owner always comes from
// the verified token, never from the request body.
type SecretService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewSecretService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *SecretService {
	return &SecretService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "secret_service"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// List returns the owner's secrets without payloads. No secrets is an
// empty slice, not an error.
func (s *SecretService) List(ctx context.Context, userID string) ([]*models.Secret, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	items, err := s.repomanager.Secrets(s.db).ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: error listing secrets: %w", common.ErrStorage, err)
	}
	return items, nil
}

// Add stores an opaque payload for the owner. The payload is kept as given.
func (s *SecretService) Add(ctx context.Context, userID, title, secretType, data string) (*models.Secret, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	}

	secret, err := s.repomanager.Secrets(s.db).Create(ctx, &models.Secret{
		UserID:        userID,
		Title:         title,
		Type:          secretType,
		EncryptedData: data,
		LastAccessed:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: error creating secret: %w", common.ErrStorage, err)
	}

	s.logger.Info(ctx, "secret stored", "user_id", userID, "secret_id", secret.ID)
	return secret, nil
}

// Reveal returns one owned secret with its payload and marks it accessed.
// Another user's id is reported as common.ErrorNotFound.
func (s *SecretService) Reveal(ctx context.Context, userID, id string) (*models.Secret, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: secret id is required", common.ErrInvalidInput)
	}

	var secret *models.Secret
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Secrets(tx)

		found, err := repo.GetForOwner(ctx, userID, id)
		if err != nil {
			return err
		}

		at := s.now()
		if err := repo.Touch(ctx, userID, id, at); err != nil {
			return err
		}
		found.LastAccessed = at
		secret = found
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: error revealing secret: %w", common.ErrStorage, err)
	}

	s.logger.Info(ctx, "secret revealed", "user_id", userID, "secret_id", id)
	return secret, nil
}
