package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	Update(ctx context.Context, db *gorm.DB, order *Order) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Order, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Order, error)
	FindByOwner(ctx context.Context, db *gorm.DB, ownerID int64) ([]Order, error)
	Find(ctx context.Context, db *gorm.DB, filter Filter) ([]Order, error)
	DeleteByID(ctx context.Context, db *gorm.DB, id int64) (bool, error)
}
