package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

type OrderService struct {
	Repo   *repo.GormRepo
	Events EventPublisher
}

// PlaceOrder turns the user's cart into an order. Stock is checked for every
// line before anything is written, and the decrement re-checks it, so either
// the order is created, stock reduced and the cart emptied, or nothing changes.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.place", "user_id", userID)

	var order *models.Order
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		lines, err := tx.CartLines(ctx, userID, true)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.E(domain.ErrEmptyCart, "Cart is empty")
		}

		for _, line := range lines {
			if line.Quantity > line.Stock {
				return domain.E(domain.ErrInsufficientStock, "Not enough stock for %s", line.Title)
			}
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
				Title:     line.Title,
			})
		}

		order = &models.Order{
			UserID: userID,
			Total:  total.Round(2).InexactFloat64(),
			Status: models.OrderStatusCompleted,
			Items:  items,
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for _, line := range lines {
			ok, err := tx.DecrementStock(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if !ok {
				return domain.E(domain.ErrInsufficientStock, "Not enough stock for %s", line.Title)
			}
		}

		return tx.ClearCart(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			l.Warn("order_rejected", "status", 400, "reason", err.Error())
		}
		return nil, err
	}

	l.Info("order_placed", "status", 201, "order_id", order.ID, "total", order.Total, "items", len(order.Items))
	s.publishPlaced(ctx, order)
	return order, nil
}

func (s *OrderService) publishPlaced(ctx context.Context, order *models.Order) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishEvent(ctx, TopicOrderEvents, userKey(order.UserID), newOrderPlacedEvent(order)); err != nil {
		logging.FromContext(ctx).With("svc", "order.place").
			Error("order_event_failed", "order_id", order.ID, "error", err)
	}
}

func (s *OrderService) List(ctx context.Context, userID uint) ([]models.OrderSummary, error) {
	return s.Repo.ListOrders(ctx, userID)
}

// Get returns one of the user's orders with its items. Orders of other users are reported as missing.
func (s *OrderService) Get(ctx context.Context, userID, orderID uint) (*models.OrderDetail, error) {
	order, err := s.Repo.GetOrder(ctx, userID, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.E(domain.ErrNotFound, "Order not found")
	}
	if err != nil {
		return nil, err
	}

	items, err := s.Repo.OrderItemsWithImage(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &models.OrderDetail{
		ID:        order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		Items:     items,
	}, nil
}
