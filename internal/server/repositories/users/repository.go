// Package users stores identities and their dial credentials.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dialkeeper/internal/angles"
	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/dmitrijs2005/dialkeeper/internal/server/models"
)

// Repository is the credential store. Create relies on the database unique
// constraint on email and reports a conflict as common.ErrDuplicateEmail.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// userRow is what both backends read back before the credential is decoded.
type userRow struct {
	user       models.User
	credential string
}

// toModel decodes the stored credential. A value that does not parse into
// three angles is reported as common.ErrDataCorrupt together with the user id.
func (r *userRow) toModel() (*models.User, error) {
	c, err := angles.Decode(r.credential)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", r.user.ID, err)
	}
	u := r.user
	u.Credential = c
	return &u, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func checkDeleted(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
