package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

type ReviewService struct {
	Repo *repo.GormRepo
}

var (
	errReviewNotFound  = domain.E(domain.ErrNotFound, "Review not found")
	errAlreadyReviewed = domain.E(domain.ErrConflict, "You have already reviewed this product")
)

func (s *ReviewService) ListForProduct(ctx context.Context, productID uint) ([]models.ReviewView, error) {
	return s.Repo.ReviewsForProduct(ctx, productID)
}

func (s *ReviewService) Create(ctx context.Context, id domain.Identity, req transport.CreateReviewRequest) (*models.ReviewView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.Repo.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errProductNotFound
		}
		return nil, err
	}

	exists, err := s.Repo.ReviewExists(ctx, req.ProductID, id.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errAlreadyReviewed
	}

	review := &models.Review{
		ProductID: req.ProductID,
		UserID:    id.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.Repo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, errAlreadyReviewed
		}
		return nil, err
	}

	return s.Repo.GetReviewView(ctx, review.ID)
}

// owned loads a review and checks that id may change it.
func (s *ReviewService) owned(ctx context.Context, id domain.Identity, reviewID uint, denied string) (*models.Review, error) {
	review, err := s.Repo.GetReview(ctx, reviewID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	if !id.CanModify(review.UserID) {
		logging.FromContext(ctx).With("svc", "review").
			Warn("review_access_denied", "status", 403, "review_id", reviewID, "user_id", id.UserID)
		return nil, domain.E(domain.ErrForbidden, "%s", denied)
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id domain.Identity, reviewID uint, req transport.UpdateReviewRequest) (*models.ReviewView, error) {
	if _, err := s.owned(ctx, id, reviewID, "Not authorized to edit this review"); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateReview(ctx, reviewID, req.Rating, req.Comment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errReviewNotFound
		}
		return nil, err
	}
	return s.Repo.GetReviewView(ctx, reviewID)
}

func (s *ReviewService) Delete(ctx context.Context, id domain.Identity, reviewID uint) error {
	if _, err := s.owned(ctx, id, reviewID, "Not authorized to delete this review"); err != nil {
		return err
	}
	if err := s.Repo.DeleteReview(ctx, reviewID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errReviewNotFound
		}
		return err
	}
	return nil
}
