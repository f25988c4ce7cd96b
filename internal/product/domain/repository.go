package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]Product, error)
	FindAll(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Product, error)
	DeleteByID(ctx context.Context, db *gorm.DB, id int64) (bool, error)
}

type ListFilter struct {
	Type *int
}
