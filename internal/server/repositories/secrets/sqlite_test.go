package secrets_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/dialkeeper/internal/angles"
	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/dmitrijs2005/dialkeeper/internal/server/models"
	"github.com/dmitrijs2005/dialkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dialkeeper/internal/server/repositories/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	repo  secrets.Repository
	alice string
	bob   string
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	db, err := repomanager.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(ctx, db))

	a, err := m.Users(db).Create(ctx, &models.User{Name: "Alice", Email: "a@x.com", Credential: angles.New(10, 200, 300)})
	require.NoError(t, err)
	b, err := m.Users(db).Create(ctx, &models.User{Name: "Bob", Email: "b@x.com", Credential: angles.New(1, 2, 3)})
	require.NoError(t, err)

	return fixture{db: db, repo: m.Secrets(db), alice: a.ID, bob: b.ID}
}

func TestSQLite_ListIsOwnerScoped(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.repo.Create(ctx, &models.Secret{UserID: f.alice, Title: "alice-1", EncryptedData: "a1"})
	require.NoError(t, err)
	_, err = f.repo.Create(ctx, &models.Secret{UserID: f.bob, Title: "bob-1", EncryptedData: "b1"})
	require.NoError(t, err)

	list, err := f.repo.ListByOwner(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alice-1", list[0].Title)
	assert.Equal(t, f.alice, list[0].UserID)
	assert.Empty(t, list[0].EncryptedData)
}

func TestSQLite_ListEmpty(t *testing.T) {
	f := setup(t)

	list, err := f.repo.ListByOwner(context.Background(), f.bob)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestSQLite_ListOrderedByLastAccessed(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, title := range []string{"old", "newest", "middle"} {
		offsets := []time.Duration{0, 2 * time.Hour, time.Hour}
		_, err := f.repo.Create(ctx, &models.Secret{
			UserID: f.alice, Title: title, LastAccessed: base.Add(offsets[i]),
		})
		require.NoError(t, err)
	}

	list, err := f.repo.ListByOwner(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"newest", "middle", "old"}, []string{list[0].Title, list[1].Title, list[2].Title})
	assert.True(t, list[0].LastAccessed.Equal(base.Add(2*time.Hour)))
}

func TestSQLite_GetAndTouchAreOwnerScoped(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	s, err := f.repo.Create(ctx, &models.Secret{UserID: f.alice, Title: "wifi", Type: "password", EncryptedData: "hunter2"})
	require.NoError(t, err)

	got, err := f.repo.GetForOwner(ctx, f.alice, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got.EncryptedData)
	assert.Equal(t, "password", got.Type)

	_, err = f.repo.GetForOwner(ctx, f.bob, s.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	later := time.Now().Add(time.Hour)
	assert.ErrorIs(t, f.repo.Touch(ctx, f.bob, s.ID, later), common.ErrorNotFound)
	require.NoError(t, f.repo.Touch(ctx, f.alice, s.ID, later))

	got, err = f.repo.GetForOwner(ctx, f.alice, s.ID)
	require.NoError(t, err)
	assert.Equal(t, later.UnixMilli(), got.LastAccessed.UnixMilli())
}

func TestSQLite_CreateForUnknownOwnerFails(t *testing.T) {
	f := setup(t)

	_, err := f.repo.Create(context.Background(), &models.Secret{UserID: "nobody", Title: "x"})
	assert.Error(t, err)
}
