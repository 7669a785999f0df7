package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
)

func (r *GormRepo) SaveRefreshToken(ctx context.Context, t *models.RefreshToken) error {
	return translate(r.DB.WithContext(ctx).Create(t).Error)
}

func (r *GormRepo) FindRefreshToken(ctx context.Context, digest string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := r.DB.WithContext(ctx).Where("token = ?", digest).First(&token).Error; err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

// DeleteRefreshToken reports whether a row was removed.
func (r *GormRepo) DeleteRefreshToken(ctx context.Context, digest string) (bool, error) {
	res := r.DB.WithContext(ctx).Where("token = ?", digest).Delete(&models.RefreshToken{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
