package secrets

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dialkeeper/internal/dbx"
	"github.com/dmitrijs2005/dialkeeper/internal/server/models"
	"github.com/google/uuid"
)

// SQLiteRepository implements Repository for modernc.org/sqlite, keeping
// last_accessed as unix milliseconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, secret *models.Secret) (*models.Secret, error) {
	s, err := prepare(secret, uuid.NewString)
	if err != nil {
		return nil, err
	}
	s.LastAccessed = time.UnixMilli(s.LastAccessed.UnixMilli()).UTC()

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO secrets (id, user_id, title, type, encrypted_data, last_accessed) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Title, s.Type, s.EncryptedData, s.LastAccessed.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, userID string) ([]*models.Secret, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, type, last_accessed FROM secrets
		 WHERE user_id = ?
		 ORDER BY last_accessed DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select secrets: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Secret, 0)
	for rows.Next() {
		var (
			item         models.Secret
			lastAccessed int64
		)
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Type, &lastAccessed); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		item.LastAccessed = time.UnixMilli(lastAccessed).UTC()
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetForOwner(ctx context.Context, userID, id string) (*models.Secret, error) {
	var (
		s            models.Secret
		lastAccessed int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, type, encrypted_data, last_accessed FROM secrets
		 WHERE id = ? AND user_id = ?`, id, userID).Scan(
		&s.ID, &s.UserID, &s.Title, &s.Type, &s.EncryptedData, &lastAccessed)
	if err != nil {
		return nil, notFoundOr(err)
	}
	s.LastAccessed = time.UnixMilli(lastAccessed).UTC()
	return &s, nil
}

func (r *SQLiteRepository) Touch(ctx context.Context, userID, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE secrets SET last_accessed = ? WHERE id = ? AND user_id = ?`, at.UnixMilli(), id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkTouched(res)
}
