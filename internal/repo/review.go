package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
	"gorm.io/gorm"
)

const reviewViewColumns = "r.id, r.product_id, r.user_id, r.rating, r.comment, r.created_at, u.first_name, u.last_name"

func (r *GormRepo) reviewViews(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("reviews AS r").
		Select(reviewViewColumns).
		Joins("JOIN users AS u ON u.id = r.user_id")
}

func (r *GormRepo) ReviewsForProduct(ctx context.Context, productID uint) ([]models.ReviewView, error) {
	reviews := []models.ReviewView{}
	err := r.reviewViews(ctx).
		Where("r.product_id = ?", productID).
		Order("r.created_at DESC, r.id DESC").
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormRepo) GetReviewView(ctx context.Context, id uint) (*models.ReviewView, error) {
	var views []models.ReviewView
	if err := r.reviewViews(ctx).Where("r.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, translate(gorm.ErrRecordNotFound)
	}
	return &views[0], nil
}

func (r *GormRepo) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.DB.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (r *GormRepo) ReviewExists(ctx context.Context, productID, userID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Review{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) error {
	return translate(r.DB.WithContext(ctx).Create(review).Error)
}

func (r *GormRepo) UpdateReview(ctx context.Context, id uint, rating int, comment string) error {
	res := r.DB.WithContext(ctx).Model(&models.Review{}).
		Where("id = ?", id).
		Updates(map[string]any{"rating": rating, "comment": comment})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *GormRepo) DeleteReview(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
