package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/domain"
)

func intp(v int) *int { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{ Validate() error }
		wantErr error
		wantMsg string
	}{
		{"register ok", RegisterRequest{Email: "a@b.co", Password: "x", FirstName: "A", LastName: "B"}, nil, ""},
		{"register missing last name", RegisterRequest{Email: "a@b.co", Password: "x", FirstName: "A", LastName: " "}, domain.ErrValidation, "All fields are required"},
		{"register bad email", RegisterRequest{Email: "nope", Password: "x", FirstName: "A", LastName: "B"}, domain.ErrValidation, "Invalid email address"},
		{"login missing password", LoginRequest{Email: "a@b.co"}, domain.ErrValidation, "Email and password are required"},
		{"refresh missing", RefreshRequest{}, domain.ErrUnauthorized, "Refresh token required"},
		{"cart default quantity", AddCartItemRequest{ProductID: 1}, nil, ""},
		{"cart zero quantity", AddCartItemRequest{ProductID: 1, Quantity: intp(0)}, domain.ErrValidation, "Quantity must be at least 1"},
		{"cart missing product", AddCartItemRequest{Quantity: intp(1)}, domain.ErrValidation, "Product ID is required"},
		{"cart update missing quantity", UpdateCartItemRequest{}, domain.ErrValidation, "Quantity is required"},
		{"cart update zero quantity", UpdateCartItemRequest{Quantity: intp(0)}, nil, ""},
		{"review missing rating", CreateReviewRequest{ProductID: 1}, domain.ErrValidation, "Product ID and rating are required"},
		{"review rating too high", CreateReviewRequest{ProductID: 1, Rating: 6}, domain.ErrValidation, "Rating must be between 1 and 5"},
		{"review update negative", UpdateReviewRequest{Rating: -1}, domain.ErrValidation, "Rating must be between 1 and 5"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, domain.Message(err))
		})
	}
}

func TestAddCartItemRequest_Qty(t *testing.T) {
	assert.Equal(t, 1, AddCartItemRequest{}.Qty())
	assert.Equal(t, 4, AddCartItemRequest{Quantity: intp(4)}.Qty())
}

func TestRegisterRequest_Normalize(t *testing.T) {
	r := RegisterRequest{Email: "  User1@Shop.COM ", FirstName: " Jan ", LastName: "Kowalski "}
	r.Normalize()
	assert.Equal(t, "user1@shop.com", r.Email)
	assert.Equal(t, "Jan", r.FirstName)
	assert.Equal(t, "Kowalski", r.LastName)
}
