package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/testutil"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func TestAdminService_Reviews(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "user1@shop.com")
	p := testutil.CreateProduct(t, env.DB, "Mug", 9.99, 10)

	r, err := env.Reviews.Create(ctx, identityOf(u), transport.CreateReviewRequest{ProductID: p.ID, Rating: 4})
	require.NoError(t, err)

	all, err := env.Admin.Reviews(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "user1@shop.com", all[0].Email)
	assert.Equal(t, "Mug", all[0].ProductTitle)
	assert.Equal(t, "Test", all[0].FirstName)

	require.NoError(t, env.Admin.DeleteReview(ctx, r.ID))
	err = env.Admin.DeleteReview(ctx, r.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdminService_Users(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.admin(t)
	env.user(t, "user1@shop.com")

	users, err := env.Admin.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin@shop.com", users[0].Email)
}

func TestAdminService_DeleteUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)
	buyer := env.user(t, "buyer@shop.com")
	idle := env.user(t, "idle@shop.com")
	p := testutil.CreateProduct(t, env.DB, "Mug", 9.99, 10)

	_, err := env.Cart.AddItem(ctx, buyer.ID, p.ID, 1)
	require.NoError(t, err)
	_, err = env.Orders.PlaceOrder(ctx, buyer.ID)
	require.NoError(t, err)

	_, err = env.Cart.AddItem(ctx, idle.ID, p.ID, 2)
	require.NoError(t, err)
	_, err = env.Reviews.Create(ctx, identityOf(idle), transport.CreateReviewRequest{ProductID: p.ID, Rating: 3})
	require.NoError(t, err)
	_, err = env.Tokens.IssueTokens(ctx, idle)
	require.NoError(t, err)

	tests := []struct {
		name    string
		userID  uint
		wantErr error
	}{
		{"self", admin.ID, domain.ErrValidation},
		{"unknown", 999, domain.ErrNotFound},
		{"has orders", buyer.ID, domain.ErrConflict},
		{"idle user", idle.ID, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.Admin.DeleteUser(ctx, identityOf(admin), tt.userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	assert.EqualValues(t, 0, testutil.Count(t, env.DB, &models.User{}, "id = ?", idle.ID))
	assert.EqualValues(t, 0, testutil.Count(t, env.DB, &models.CartItem{}, "user_id = ?", idle.ID))
	assert.EqualValues(t, 0, testutil.Count(t, env.DB, &models.Review{}, "user_id = ?", idle.ID))
	assert.EqualValues(t, 0, testutil.Count(t, env.DB, &models.RefreshToken{}, "user_id = ?", idle.ID))
	assert.EqualValues(t, 1, testutil.Count(t, env.DB, &models.User{}, "id = ?", buyer.ID))
}
