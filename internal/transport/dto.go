package transport

import (
	"net/mail"
	"strings"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Normalize trims the name fields and lowercases the email.
func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" ||
		strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return domain.E(domain.ErrValidation, "All fields are required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		return domain.E(domain.ErrValidation, "Invalid email address")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return domain.E(domain.ErrValidation, "Email and password are required")
	}
	return nil
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r RefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return domain.E(domain.ErrUnauthorized, "Refresh token required")
	}
	return nil
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// LogoutRequest carries an optional refresh token; logout succeeds without one.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r LogoutRequest) Validate() error { return nil }

type ProductListQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Limit    string `query:"limit"`
	Page     string `query:"page"`
}

type AddCartItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  *int `json:"quantity"`
}

func (r AddCartItemRequest) Validate() error {
	if r.ProductID == 0 {
		return domain.E(domain.ErrValidation, "Product ID is required")
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		return domain.E(domain.ErrValidation, "Quantity must be at least 1")
	}
	return nil
}

// Qty is the requested quantity, defaulting to one.
func (r AddCartItemRequest) Qty() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

func (r UpdateCartItemRequest) Validate() error {
	if r.Quantity == nil {
		return domain.E(domain.ErrValidation, "Quantity is required")
	}
	return nil
}

type CreateReviewRequest struct {
	ProductID uint   `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (r CreateReviewRequest) Validate() error {
	if r.ProductID == 0 || r.Rating == 0 {
		return domain.E(domain.ErrValidation, "Product ID and rating are required")
	}
	return validRating(r.Rating)
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r UpdateReviewRequest) Validate() error {
	if r.Rating == 0 {
		return domain.E(domain.ErrValidation, "Rating is required")
	}
	return validRating(r.Rating)
}

func validRating(rating int) error {
	if rating < 1 || rating > 5 {
		return domain.E(domain.ErrValidation, "Rating must be between 1 and 5")
	}
	return nil
}
