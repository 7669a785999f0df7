package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/pkg/logging"
	"github.com/Skotchmaster/storefront/pkg/tokens"
)

type TokenService struct {
	Repo          *repo.GormRepo
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return 15 * time.Minute
}

func (s *TokenService) refreshTTL() time.Duration {
	if s.RefreshTTL > 0 {
		return s.RefreshTTL
	}
	return 7 * 24 * time.Hour
}

func (s *TokenService) accessToken(user *models.User, now time.Time) (string, error) {
	return tokens.NewAccessToken(user.ID, user.Email, user.Role, now, s.accessTTL(), s.AccessSecret)
}

// IssueTokens signs a fresh access/refresh pair and persists the refresh digest.
func (s *TokenService) IssueTokens(ctx context.Context, user *models.User) (TokenPair, error) {
	now := time.Now()

	access, err := s.accessToken(user, now)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	jti := uuid.NewString()
	refresh, err := tokens.NewRefreshToken(user.ID, user.Email, user.Role, jti, now, s.refreshTTL(), s.RefreshSecret)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	row := models.RefreshToken{
		UserID:    user.ID,
		Token:     tokens.Digest(refresh),
		JTI:       jti,
		ExpiresAt: now.Add(s.refreshTTL()).UTC(),
	}
	if err := s.Repo.SaveRefreshToken(ctx, &row); err != nil {
		return TokenPair{}, fmt.Errorf("save refresh token: %w", err)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *TokenService) VerifyAccess(raw string) (domain.Identity, error) {
	if raw == "" {
		return domain.Identity{}, domain.E(domain.ErrUnauthorized, "Access token required")
	}
	claims, err := tokens.AccessClaimsFromToken(raw, s.AccessSecret)
	if err != nil {
		return domain.Identity{}, domain.E(domain.ErrUnauthorized, "Invalid or expired token")
	}
	id, err := claims.UserID()
	if err != nil {
		return domain.Identity{}, domain.E(domain.ErrUnauthorized, "Invalid or expired token")
	}
	return domain.Identity{UserID: id, Email: claims.Email, Role: claims.Role}, nil
}

// Refresh exchanges a stored refresh token for a new access token. The
// refresh token itself is not rotated. A stored token that fails
// verification is deleted.
func (s *TokenService) Refresh(ctx context.Context, raw string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "token.refresh")

	if raw == "" {
		return "", domain.E(domain.ErrUnauthorized, "Refresh token required")
	}
	invalid := domain.E(domain.ErrForbidden, "Invalid refresh token")

	digest := tokens.Digest(raw)
	stored, err := s.Repo.FindRefreshToken(ctx, digest)
	if errors.Is(err, domain.ErrNotFound) {
		l.Warn("refresh_rejected", "status", 403, "reason", "unknown token")
		return "", invalid
	}
	if err != nil {
		return "", err
	}

	claims, err := tokens.RefreshClaimsFromToken(raw, s.RefreshSecret)
	if err == nil {
		if id, idErr := claims.UserID(); idErr != nil || id != stored.UserID {
			err = tokens.ErrInvalidToken
		}
	}
	if err != nil {
		if _, delErr := s.Repo.DeleteRefreshToken(ctx, digest); delErr != nil {
			l.Error("refresh_cleanup_failed", "status", 500, "error", delErr)
		}
		l.Warn("refresh_rejected", "status", 403, "reason", "verification failed", "user_id", stored.UserID)
		return "", invalid
	}

	user, err := s.Repo.GetUserByID(ctx, stored.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", invalid
	}
	if err != nil {
		return "", err
	}

	access, err := s.accessToken(user, time.Now())
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return access, nil
}

// Revoke deletes the stored refresh token. Unknown or empty tokens are ignored.
func (s *TokenService) Revoke(ctx context.Context, raw string) error {
	if raw == "" {
		return nil
	}
	_, err := s.Repo.DeleteRefreshToken(ctx, tokens.Digest(raw))
	return err
}
