package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID       int64           `json:"id" gorm:"primaryKey"`
	Name     string          `json:"name" gorm:"type:text;not null"`
	Type     int             `json:"type" gorm:"not null;default:0"`
	Price    decimal.Decimal `json:"price" gorm:"type:numeric(18,4);not null"`
	Quantity int             `json:"quantity" gorm:"not null;default:0"`
}

func (Product) TableName() string { return "products" }

// SameEntity reports whether both values refer to the same persisted product.
func (p Product) SameEntity(other Product) bool {
	return p.ID != 0 && p.ID == other.ID
}
