// Package secrets stores per-user secret records. Every read is scoped by
// owner in the query itself.
package secrets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/dmitrijs2005/dialkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, secret *models.Secret) (*models.Secret, error)
	// ListByOwner returns the owner's secrets without their payloads, most
	// recently accessed first. An empty result is not an error.
	ListByOwner(ctx context.Context, userID string) ([]*models.Secret, error)
	// GetForOwner returns common.ErrorNotFound both for a missing id and for
	// an id owned by someone else.
	GetForOwner(ctx context.Context, userID, id string) (*models.Secret, error)
	Touch(ctx context.Context, userID, id string, at time.Time) error
}

func prepare(secret *models.Secret, newID func() string) (*models.Secret, error) {
	if secret.UserID == "" {
		return nil, fmt.Errorf("%w: secret without owner", common.ErrInvalidInput)
	}
	s := *secret
	if s.ID == "" {
		s.ID = newID()
	}
	if s.Type == "" {
		s.Type = models.DefaultSecretType
	}
	if s.LastAccessed.IsZero() {
		s.LastAccessed = time.Now().UTC()
	}
	return &s, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func checkTouched(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
