package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Skotchmaster/storefront/internal/models"
)

const (
	TopicOrderEvents     = "order_events"
	EventTypeOrderPlaced = "order_placed"
)

// EventPublisher is satisfied by mykafka.Producer and mykafka.Noop.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type OrderEventItem struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderPlacedEvent struct {
	Type       string           `json:"type"`
	OrderID    uint             `json:"orderId"`
	UserID     uint             `json:"userId"`
	Total      float64          `json:"total"`
	Items      []OrderEventItem `json:"items"`
	OccurredAt time.Time        `json:"occurredAt"`
}

func newOrderPlacedEvent(o *models.Order) OrderPlacedEvent {
	items := make([]OrderEventItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderEventItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	return OrderPlacedEvent{
		Type:       EventTypeOrderPlaced,
		OrderID:    o.ID,
		UserID:     o.UserID,
		Total:      o.Total,
		Items:      items,
		OccurredAt: time.Now().UTC(),
	}
}

func userKey(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}
