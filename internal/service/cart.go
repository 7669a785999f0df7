package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

var (
	errProductNotFound  = domain.E(domain.ErrNotFound, "Product not found")
	errCartItemNotFound = domain.E(domain.ErrNotFound, "Cart item not found")
	errNotEnoughStock   = domain.E(domain.ErrInsufficientStock, "Not enough stock available")
)

func (s *CartService) Get(ctx context.Context, userID uint) ([]models.CartLine, error) {
	return s.Repo.CartLines(ctx, userID, false)
}

// AddItem puts quantity units of a product into the cart, merging with an
// existing line for the same product.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) ([]models.CartLine, error) {
	if productID == 0 {
		return nil, domain.E(domain.ErrValidation, "Product ID is required")
	}
	if quantity < 1 {
		return nil, domain.E(domain.ErrValidation, "Quantity must be at least 1")
	}

	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		product, err := tx.GetProductForUpdate(ctx, productID)
		if errors.Is(err, domain.ErrNotFound) {
			return errProductNotFound
		}
		if err != nil {
			return err
		}

		inCart := 0
		existing, err := tx.GetCartItemByProduct(ctx, userID, productID)
		switch {
		case err == nil:
			inCart = existing.Quantity
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		if inCart+quantity > product.Stock {
			return errNotEnoughStock
		}

		return tx.AddToCart(ctx, &models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity})
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// SetQuantity replaces the quantity of a cart line. A quantity of zero or less removes it.
func (s *CartService) SetQuantity(ctx context.Context, userID, itemID uint, quantity int) ([]models.CartLine, error) {
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		item, err := tx.GetCartItem(ctx, userID, itemID)
		if errors.Is(err, domain.ErrNotFound) {
			return errCartItemNotFound
		}
		if err != nil {
			return err
		}

		if quantity <= 0 {
			return tx.DeleteCartItem(ctx, userID, itemID)
		}

		product, err := tx.GetProductForUpdate(ctx, item.ProductID)
		if errors.Is(err, domain.ErrNotFound) {
			return errProductNotFound
		}
		if err != nil {
			return err
		}
		if quantity > product.Stock {
			return errNotEnoughStock
		}

		return tx.SetCartQuantity(ctx, item.ID, quantity)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) ([]models.CartLine, error) {
	if err := s.Repo.DeleteCartItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errCartItemNotFound
		}
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID uint) ([]models.CartLine, error) {
	if err := s.Repo.ClearCart(ctx, userID); err != nil {
		return nil, err
	}
	return []models.CartLine{}, nil
}
