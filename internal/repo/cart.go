package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
	"gorm.io/gorm"
)

// CartLines returns the user's cart joined with live product data. With
// lock set the joined product rows are locked on postgres and the lines come
// back in product id order, so every checkout takes its locks in the same order.
func (r *GormRepo) CartLines(ctx context.Context, userID uint, lock bool) ([]models.CartLine, error) {
	q := r.DB.WithContext(ctx).
		Table("cart_items AS ci").
		Select("ci.id, ci.user_id, ci.product_id, ci.quantity, p.title, p.price, p.image, p.stock").
		Joins("JOIN products AS p ON p.id = ci.product_id").
		Where("ci.user_id = ?", userID)
	if lock {
		q = r.forUpdate(q.Order("p.id ASC"), "p")
	} else {
		q = q.Order("ci.id ASC")
	}

	lines := []models.CartLine{}
	if err := q.Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *GormRepo) GetCartItem(ctx context.Context, userID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *GormRepo) GetCartItemByProduct(ctx context.Context, userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// AddToCart increments the existing (user, product) row or creates it.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	db := r.DB.WithContext(ctx)
	res := db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return translate(db.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).First(item).Error)
	}
	return translate(db.Create(item).Error)
}

func (r *GormRepo) SetCartQuantity(ctx context.Context, itemID uint, quantity int) error {
	return r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, userID, itemID uint) error {
	res := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
