// Package testutil builds throwaway databases for package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/pkg/db"
	pkg_hash "github.com/Skotchmaster/storefront/pkg/hash"
)

// NewDB opens a private in-memory SQLite database with the schema migrated.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(gdb))

	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

func NewRepo(t testing.TB) *repo.GormRepo {
	t.Helper()
	return repo.New(NewDB(t))
}

func CreateUser(t testing.TB, gdb *gorm.DB, email, password, role string) *models.User {
	t.Helper()

	pwHash, err := pkg_hash.HashPassword(password)
	require.NoError(t, err)
	u := &models.User{
		Email:        email,
		PasswordHash: pwHash,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	require.NoError(t, gdb.Create(u).Error)
	return u
}

func CreateProduct(t testing.TB, gdb *gorm.DB, title string, price float64, stock int) *models.Product {
	t.Helper()

	p := &models.Product{
		Title:       title,
		Price:       price,
		Description: title + " description",
		Category:    "misc",
		Stock:       stock,
	}
	require.NoError(t, gdb.Create(p).Error)
	return p
}

func Stock(t testing.TB, gdb *gorm.DB, productID uint) int {
	t.Helper()

	var p models.Product
	require.NoError(t, gdb.First(&p, productID).Error)
	return p.Stock
}

func Count(t testing.TB, gdb *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	q := gdb.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
