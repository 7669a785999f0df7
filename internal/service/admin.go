package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

// AdminService assumes the caller was already checked for the admin role.
type AdminService struct {
	Repo *repo.GormRepo
}

func (s *AdminService) Reviews(ctx context.Context) ([]models.AdminReviewView, error) {
	return s.Repo.AllReviews(ctx)
}

func (s *AdminService) Users(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *AdminService) DeleteReview(ctx context.Context, reviewID uint) error {
	if err := s.Repo.DeleteReview(ctx, reviewID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errReviewNotFound
		}
		return err
	}
	return nil
}

// DeleteUser removes a user with their reviews, cart and refresh tokens.
// Users with orders are kept since orders are permanent history.
func (s *AdminService) DeleteUser(ctx context.Context, actor domain.Identity, userID uint) error {
	l := logging.FromContext(ctx).With("svc", "admin.delete_user", "actor_id", actor.UserID, "user_id", userID)

	if actor.UserID == userID {
		return domain.E(domain.ErrValidation, "You cannot delete your own account")
	}

	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.E(domain.ErrNotFound, "User not found")
			}
			return err
		}

		orders, err := tx.CountOrdersByUser(ctx, userID)
		if err != nil {
			return err
		}
		if orders > 0 {
			return domain.E(domain.ErrConflict, "User has orders and cannot be deleted")
		}

		if err := tx.DeleteUserData(ctx, userID); err != nil {
			return err
		}
		return tx.DeleteUser(ctx, userID)
	})
	if err != nil {
		return err
	}

	l.Info("user_deleted", "status", 200)
	return nil
}
