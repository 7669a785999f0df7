package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
)

// CreateOrder inserts the order and its items in one statement batch.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return translate(r.DB.WithContext(ctx).Create(order).Error)
}

func (r *GormRepo) ListOrders(ctx context.Context, userID uint) ([]models.OrderSummary, error) {
	orders := []models.OrderSummary{}
	err := r.DB.WithContext(ctx).
		Table("orders AS o").
		Select("o.id, o.user_id, o.total, o.status, o.created_at, " +
			"(SELECT COUNT(*) FROM order_items AS oi WHERE oi.order_id = o.id) AS item_count").
		Where("o.user_id = ?", userID).
		Order("o.created_at DESC, o.id DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *GormRepo) OrderItemsWithImage(ctx context.Context, orderID uint) ([]models.OrderItemView, error) {
	items := []models.OrderItemView{}
	err := r.DB.WithContext(ctx).
		Table("order_items AS oi").
		Select("oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, oi.title, COALESCE(p.image, '') AS image").
		Joins("LEFT JOIN products AS p ON p.id = oi.product_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CountOrdersByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
