package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/testutil"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []any
	keys   []string
	err    error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, topic+"/"+key)
	p.events = append(p.events, event)
	return nil
}

type testEnv struct {
	DB      *gorm.DB
	Repo    *repo.GormRepo
	Tokens  *TokenService
	Auth    *AuthService
	Cart    *CartService
	Orders  *OrderService
	Catalog *CatalogService
	Reviews *ReviewService
	Admin   *AdminService
	Events  *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := testutil.NewDB(t)
	r := repo.New(gdb)
	tokens := &TokenService{
		Repo:          r,
		AccessSecret:  []byte("test-jwt-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    time.Hour,
	}
	events := &recordingPublisher{}

	return &testEnv{
		DB:      gdb,
		Repo:    r,
		Tokens:  tokens,
		Auth:    &AuthService{Repo: r, Tokens: tokens},
		Cart:    &CartService{Repo: r},
		Orders:  &OrderService{Repo: r, Events: events},
		Catalog: &CatalogService{Repo: r},
		Reviews: &ReviewService{Repo: r},
		Admin:   &AdminService{Repo: r},
		Events:  events,
	}
}

func (e *testEnv) user(t *testing.T, email string) *models.User {
	t.Helper()
	return testutil.CreateUser(t, e.DB, email, "user123", domain.RoleUser)
}

func (e *testEnv) admin(t *testing.T) *models.User {
	t.Helper()
	return testutil.CreateUser(t, e.DB, "admin@shop.com", "admin123", domain.RoleAdmin)
}

func identityOf(u *models.User) domain.Identity {
	return domain.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}
