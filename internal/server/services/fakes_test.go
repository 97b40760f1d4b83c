package services

import (
	"context"
	"database/sql"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/dmitrijs2005/dialkeeper/internal/dbx"
	"github.com/dmitrijs2005/dialkeeper/internal/logging"
	"github.com/dmitrijs2005/dialkeeper/internal/server/config"
	"github.com/dmitrijs2005/dialkeeper/internal/server/models"
	"github.com/dmitrijs2005/dialkeeper/internal/server/repositories/secrets"
	"github.com/dmitrijs2005/dialkeeper/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// fakeUsersRepo is an in-memory credential store keyed by email.
type fakeUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	nextID  int

	createErr error
	getErr    error
	creates   int
	lookups   int
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, taken := f.byEmail[u.Email]; taken {
		return nil, common.ErrDuplicateEmail
	}
	f.nextID++
	stored := *u
	stored.ID = "u-" + strconv.Itoa(f.nextID)
	stored.CreatedAt = time.Now()
	f.byEmail[u.Email] = &stored
	out := stored
	return &out, nil
}

func (f *fakeUsersRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUsersRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeSecretsRepo struct {
	getOut   *models.Secret
	getErr   error
	touchErr error
	touched  []time.Time
}

func (f *fakeSecretsRepo) Create(context.Context, *models.Secret) (*models.Secret, error) {
	return nil, errBoom{}
}
func (f *fakeSecretsRepo) ListByOwner(context.Context, string) ([]*models.Secret, error) {
	return nil, errBoom{}
}
func (f *fakeSecretsRepo) GetForOwner(context.Context, string, string) (*models.Secret, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := *f.getOut
	return &out, nil
}
func (f *fakeSecretsRepo) Touch(_ context.Context, _, _ string, at time.Time) error {
	if f.touchErr != nil {
		return f.touchErr
	}
	f.touched = append(f.touched, at)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	s *fakeSecretsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.u }
func (m *fakeRepoManager) Secrets(dbx.DBTX) secrets.Repository          { return m.s }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func newTestAuthService(t *testing.T, repo *fakeUsersRepo) *AuthService {
	t.Helper()
	s, err := NewAuthService(nil, &fakeRepoManager{u: repo}, testConfig(), logging.Nop{})
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}
	return s
}
