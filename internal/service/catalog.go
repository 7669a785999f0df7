package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) List(ctx context.Context, f repo.ProductFilter) ([]models.Product, error) {
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Offset < 0 || f.Limit == 0 {
		f.Offset = 0
	}
	return s.Repo.ListProducts(ctx, f)
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.Repo.Categories(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errProductNotFound
	}
	return product, err
}
