package repository

import (
	"context"

	"github.com/smallbiznis/quickstep/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (id, name, type, price, quantity) VALUES (?, ?, ?, ?, ?)`,
		product.ID,
		product.Name,
		product.Type,
		product.Price,
		product.Quantity,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE products SET name = ?, type = ?, price = ?, quantity = ? WHERE id = ?`,
		product.Name,
		product.Type,
		product.Price,
		product.Quantity,
		product.ID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, type, price, quantity FROM products WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

// FindByIDs returns the products matching ids in id order. Unknown ids are
// skipped and duplicates collapse to one row.
func (r *repo) FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]domain.Product, error) {
	items := []domain.Product{}
	if len(ids) == 0 {
		return items, nil
	}
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, type, price, quantity FROM products WHERE id IN ? ORDER BY id ASC`,
		ids,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Product, error) {
	items := []domain.Product{}
	stmt := db.WithContext(ctx).Model(&domain.Product{})
	if filter.Type != nil {
		stmt = stmt.Where("type = ?", *filter.Type)
	}
	if err := stmt.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteByID(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM products WHERE id = ?`, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
