package secrets

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/dmitrijs2005/dialkeeper/internal/dbx"
	"github.com/dmitrijs2005/dialkeeper/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements Repository over a dbx.DBTX opened with pgx.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, secret *models.Secret) (*models.Secret, error) {
	s, err := prepare(secret, uuid.NewString)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO secrets (id, user_id, title, type, encrypted_data, last_accessed)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `
	_, err = r.db.ExecContext(ctx, query, s.ID, s.UserID, s.Title, s.Type, s.EncryptedData, s.LastAccessed)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string) ([]*models.Secret, error) {
	query :=
		`SELECT id, user_id, title, type, last_accessed FROM secrets
		 WHERE user_id = $1
		 ORDER BY last_accessed DESC, id
		 `
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select secrets: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Secret, 0)
	for rows.Next() {
		var item models.Secret
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Type, &item.LastAccessed); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetForOwner reports ErrorNotFound for ids that are not UUIDs; the column
// type would otherwise reject them with 22P02.
func (r *PostgresRepository) GetForOwner(ctx context.Context, userID, id string) (*models.Secret, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	query :=
		`SELECT id, user_id, title, type, encrypted_data, last_accessed FROM secrets
		 WHERE id = $1 AND user_id = $2
		 `
	var s models.Secret
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&s.ID, &s.UserID, &s.Title, &s.Type, &s.EncryptedData, &s.LastAccessed)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &s, nil
}

func (r *PostgresRepository) Touch(ctx context.Context, userID, id string, at time.Time) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE secrets SET last_accessed = $1 WHERE id = $2 AND user_id = $3`, at, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkTouched(res)
}
