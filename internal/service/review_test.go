package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/testutil"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func TestReviewService_Lifecycle(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.user(t, "user1@shop.com")
	stranger := env.user(t, "user2@shop.com")
	admin := env.admin(t)
	p := testutil.CreateProduct(t, env.DB, "Mug", 9.99, 10)

	created, err := env.Reviews.Create(ctx, identityOf(owner), transport.CreateReviewRequest{ProductID: p.ID, Rating: 4, Comment: "solid"})
	require.NoError(t, err)
	assert.Equal(t, "Test", created.FirstName)
	assert.Equal(t, 4, created.Rating)

	_, err = env.Reviews.Create(ctx, identityOf(owner), transport.CreateReviewRequest{ProductID: p.ID, Rating: 5})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "You have already reviewed this product", domain.Message(err))

	_, err = env.Reviews.Update(ctx, identityOf(stranger), created.ID, transport.UpdateReviewRequest{Rating: 1})
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Not authorized to edit this review", domain.Message(err))

	updated, err := env.Reviews.Update(ctx, identityOf(owner), created.ID, transport.UpdateReviewRequest{Rating: 5, Comment: "great"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "great", updated.Comment)

	updated, err = env.Reviews.Update(ctx, identityOf(admin), created.ID, transport.UpdateReviewRequest{Rating: 3, Comment: "moderated"})
	require.NoError(t, err)
	assert.Equal(t, "moderated", updated.Comment)

	_, err = env.Reviews.Update(ctx, identityOf(owner), created.ID, transport.UpdateReviewRequest{Rating: 9})
	require.ErrorIs(t, err, domain.ErrValidation)

	err = env.Reviews.Delete(ctx, identityOf(stranger), created.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Not authorized to delete this review", domain.Message(err))

	require.NoError(t, env.Reviews.Delete(ctx, identityOf(owner), created.ID))
	err = env.Reviews.Delete(ctx, identityOf(owner), created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Review not found", domain.Message(err))
}

func TestReviewService_Create_Validation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	u := env.user(t, "user1@shop.com")
	p := testutil.CreateProduct(t, env.DB, "Mug", 9.99, 10)

	tests := []struct {
		name    string
		req     transport.CreateReviewRequest
		wantErr error
		wantMsg string
	}{
		{"no product", transport.CreateReviewRequest{Rating: 3}, domain.ErrValidation, "Product ID and rating are required"},
		{"rating too low", transport.CreateReviewRequest{ProductID: p.ID, Rating: -2}, domain.ErrValidation, "Rating must be between 1 and 5"},
		{"unknown product", transport.CreateReviewRequest{ProductID: 404, Rating: 3}, domain.ErrNotFound, "Product not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Reviews.Create(context.Background(), identityOf(u), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, domain.Message(err))
		})
	}
}

func TestReviewService_ListForProduct(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	u1 := env.user(t, "user1@shop.com")
	u2 := env.user(t, "user2@shop.com")
	p := testutil.CreateProduct(t, env.DB, "Mug", 9.99, 10)
	other := testutil.CreateProduct(t, env.DB, "Cap", 5, 10)

	first, err := env.Reviews.Create(ctx, identityOf(u1), transport.CreateReviewRequest{ProductID: p.ID, Rating: 2})
	require.NoError(t, err)
	second, err := env.Reviews.Create(ctx, identityOf(u2), transport.CreateReviewRequest{ProductID: p.ID, Rating: 5})
	require.NoError(t, err)
	_, err = env.Reviews.Create(ctx, identityOf(u1), transport.CreateReviewRequest{ProductID: other.ID, Rating: 1})
	require.NoError(t, err)

	list, err := env.Reviews.ListForProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	empty, err := env.Reviews.ListForProduct(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
