package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Skotchmaster/storefront/internal/models"
	"gorm.io/gorm"
)

type ProductFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// GetProductForUpdate reads a product and, on postgres, locks its row until the transaction ends.
func (r *GormRepo) GetProductForUpdate(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	q := r.forUpdate(r.DB.WithContext(ctx), "")
	if err := q.First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	products := []models.Product{}
	if err := q.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("category <> ''").
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

// CreateProducts inserts products that may carry explicit ids. On postgres the
// id sequence is then moved past the largest id.
func (r *GormRepo) CreateProducts(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.Transaction(ctx, func(tx *GormRepo) error {
		if err := tx.DB.CreateInBatches(products, 100).Error; err != nil {
			return translate(err)
		}
		return tx.syncIDSequence("products")
	})
}

func (r *GormRepo) syncIDSequence(table string) error {
	if r.DB.Dialector.Name() != "postgres" {
		return nil
	}
	stmt := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))", table, table)
	if err := r.DB.Exec(stmt).Error; err != nil {
		return fmt.Errorf("sync %s id sequence: %w", table, err)
	}
	return nil
}

// DecrementStock subtracts qty only while enough stock remains. It reports
// false when the guard rejected the update.
func (r *GormRepo) DecrementStock(ctx context.Context, productID uint, qty int) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
