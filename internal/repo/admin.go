package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
)

func (r *GormRepo) AllReviews(ctx context.Context) ([]models.AdminReviewView, error) {
	reviews := []models.AdminReviewView{}
	err := r.DB.WithContext(ctx).
		Table("reviews AS r").
		Select(reviewViewColumns + ", u.email, p.title AS product_title").
		Joins("JOIN users AS u ON u.id = r.user_id").
		Joins("JOIN products AS p ON p.id = r.product_id").
		Order("r.created_at DESC, r.id DESC").
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// DeleteUserData removes every row owned by the user except orders.
func (r *GormRepo) DeleteUserData(ctx context.Context, userID uint) error {
	db := r.DB.WithContext(ctx)
	for _, m := range []any{&models.Review{}, &models.CartItem{}, &models.RefreshToken{}} {
		if err := db.Where("user_id = ?", userID).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
