package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, address *Address) error
	Update(ctx context.Context, db *gorm.DB, address *Address) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Address, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Address, error)
	FindByCountry(ctx context.Context, db *gorm.DB, country string) ([]Address, error)
	DeleteByID(ctx context.Context, db *gorm.DB, id int64) (bool, error)
}
