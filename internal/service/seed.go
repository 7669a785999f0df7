package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	pkg_hash "github.com/Skotchmaster/storefront/pkg/hash"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

const (
	seedMinStock  = 10
	seedStockSpan = 100
)

// Seeder fills an empty database with the external catalog and demo accounts.
type Seeder struct {
	Repo          *repo.GormRepo
	CatalogURL    string
	SeedDemoUsers bool
	Client        *http.Client
}

type demoUser struct {
	Email, Password, FirstName, LastName, Role string
}

var demoUsers = []demoUser{
	{"admin@shop.com", "admin123", "Prowadzący", "Admin", domain.RoleAdmin},
	{"user1@shop.com", "user123", "Jan", "Kowalski", domain.RoleUser},
	{"user2@shop.com", "user123", "Anna", "Nowak", domain.RoleUser},
	{"user3@shop.com", "user123", "Piotr", "Wiśniewski", domain.RoleUser},
}

type fakeStoreProduct struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

// Seed never fails startup. Problems are logged and the step is skipped.
func (s *Seeder) Seed(ctx context.Context) {
	l := logging.FromContext(ctx).With("svc", "seed")

	if s.SeedDemoUsers {
		n, err := s.seedUsers(ctx)
		if err != nil {
			l.Error("seed_users_failed", "error", err)
		} else if n > 0 {
			l.Info("users_seeded", "count", n)
		}
	}

	n, err := s.seedProducts(ctx)
	if err != nil {
		l.Error("seed_products_failed", "url", s.CatalogURL, "error", err)
	} else if n > 0 {
		l.Info("products_seeded", "count", n)
	}
}

func (s *Seeder) seedUsers(ctx context.Context) (int, error) {
	count, err := s.Repo.CountUsers(ctx)
	if err != nil || count > 0 {
		return 0, err
	}

	for _, du := range demoUsers {
		pwHash, err := pkg_hash.HashPassword(du.Password)
		if err != nil {
			return 0, fmt.Errorf("hash password: %w", err)
		}
		u := &models.User{
			Email:        du.Email,
			PasswordHash: pwHash,
			FirstName:    du.FirstName,
			LastName:     du.LastName,
			Role:         du.Role,
		}
		if err := s.Repo.CreateUser(ctx, u); err != nil {
			return 0, fmt.Errorf("create %s: %w", du.Email, err)
		}
	}
	return len(demoUsers), nil
}

func (s *Seeder) seedProducts(ctx context.Context) (int, error) {
	if s.CatalogURL == "" {
		return 0, nil
	}
	count, err := s.Repo.CountProducts(ctx)
	if err != nil || count > 0 {
		return 0, err
	}

	remote, err := s.fetch(ctx)
	if err != nil {
		return 0, err
	}

	products := make([]models.Product, 0, len(remote))
	for _, p := range remote {
		products = append(products, models.Product{
			ID:          p.ID,
			Title:       p.Title,
			Price:       p.Price,
			Description: p.Description,
			Category:    p.Category,
			Image:       p.Image,
			Rating:      p.Rating.Rate,
			RatingCount: p.Rating.Count,
			Stock:       seedMinStock + rand.Intn(seedStockSpan),
		})
	}
	if err := s.Repo.CreateProducts(ctx, products); err != nil {
		return 0, err
	}
	return len(products), nil
}

func (s *Seeder) fetch(ctx context.Context) ([]fakeStoreProduct, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.CatalogURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	var products []fakeStoreProduct
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}
