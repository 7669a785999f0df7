package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
	pkg_hash "github.com/Skotchmaster/storefront/pkg/hash"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *TokenService
}

type AuthResult struct {
	User   *models.User
	Tokens TokenPair
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.Repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	taken := domain.E(domain.ErrConflict, "User with this email already exists")
	if exists {
		l.Warn("register_rejected", "status", 400, "reason", "email taken")
		return nil, taken
	}

	pwHash, err := pkg_hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: pwHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         domain.RoleUser,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, taken
		}
		return nil, err
	}

	pair, err := s.Tokens.IssueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	l.Info("user_registered", "status", 201, "user_id", user.ID)
	return &AuthResult{User: user, Tokens: pair}, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if err := req.Validate(); err != nil {
		return nil, err
	}
	bad := domain.E(domain.ErrUnauthorized, "Invalid email or password")

	user, err := s.Repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, domain.ErrNotFound) {
		l.Warn("login_failed", "status", 401, "reason", "unknown email")
		return nil, bad
	}
	if err != nil {
		return nil, err
	}
	if !pkg_hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password", "user_id", user.ID)
		return nil, bad
	}

	pair, err := s.Tokens.IssueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: pair}, nil
}

func (s *AuthService) Me(ctx context.Context, id domain.Identity) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, id.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.E(domain.ErrNotFound, "User not found")
	}
	return user, err
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return s.Tokens.Refresh(ctx, refreshToken)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.Tokens.Revoke(ctx, refreshToken)
}
