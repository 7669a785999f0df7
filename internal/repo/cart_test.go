package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/testutil"
)

func TestCartLines_Order(t *testing.T) {
	t.Parallel()
	gdb := testutil.NewDB(t)
	r := repo.New(gdb)
	ctx := context.Background()
	u := testutil.CreateUser(t, gdb, "user1@shop.com", "user123", domain.RoleUser)
	first := testutil.CreateProduct(t, gdb, "Mug", 5, 10)
	second := testutil.CreateProduct(t, gdb, "Cap", 7, 10)

	// added in reverse product order
	require.NoError(t, r.AddToCart(ctx, &models.CartItem{UserID: u.ID, ProductID: second.ID, Quantity: 1}))
	require.NoError(t, r.AddToCart(ctx, &models.CartItem{UserID: u.ID, ProductID: first.ID, Quantity: 2}))

	tests := []struct {
		name string
		lock bool
		want []uint
	}{
		{"cart order when reading", false, []uint{second.ID, first.ID}},
		{"product order when locking", true, []uint{first.ID, second.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines []models.CartLine
			err := r.Transaction(ctx, func(tx *repo.GormRepo) error {
				var err error
				lines, err = tx.CartLines(ctx, u.ID, tt.lock)
				return err
			})
			require.NoError(t, err)

			got := make([]uint, 0, len(lines))
			for _, l := range lines {
				got = append(got, l.ProductID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
