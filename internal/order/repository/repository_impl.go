package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/smallbiznis/quickstep/internal/order/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

type orderRecord struct {
	ID         int64          `gorm:"column:id;primaryKey"`
	OwnerID    int64          `gorm:"column:order_owner"`
	ProductIDs datatypes.JSON `gorm:"column:order_products"`
	IssueDate  time.Time      `gorm:"column:issue_date"`
}

func (orderRecord) TableName() string { return "orders" }

func (r orderRecord) toDomain() (domain.Order, error) {
	ids, err := deserializeProductIDs(r.ProductIDs)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %d: %w", r.ID, err)
	}
	return domain.Order{
		ID:         r.ID,
		OwnerID:    r.OwnerID,
		ProductIDs: ids,
		IssueDate:  r.IssueDate.UTC(),
	}, nil
}

func toDomainList(records []orderRecord) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(records))
	for _, rec := range records {
		o, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO orders (id, order_owner, order_products, issue_date) VALUES (?, ?, ?, ?)`,
		order.ID,
		order.OwnerID,
		serializeProductIDs(order.ProductIDs),
		order.IssueDate.UTC(),
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	if order == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE orders SET order_owner = ?, order_products = ?, issue_date = ? WHERE id = ?`,
		order.OwnerID,
		serializeProductIDs(order.ProductIDs),
		order.IssueDate.UTC(),
		order.ID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Order, error) {
	var rec orderRecord
	err := db.WithContext(ctx).Raw(
		`SELECT id, order_owner, order_products, issue_date FROM orders WHERE id = ?`,
		id,
	).Scan(&rec).Error
	if err != nil {
		return nil, err
	}
	if rec.ID == 0 {
		return nil, nil
	}
	o, err := rec.toDomain()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Order, error) {
	return r.Find(ctx, db, domain.Filter{Kind: domain.FilterMatchAll})
}

func (r *repo) FindByOwner(ctx context.Context, db *gorm.DB, ownerID int64) ([]domain.Order, error) {
	return r.Find(ctx, db, domain.Filter{
		Kind:    domain.FilterAnd,
		Clauses: []domain.Clause{{Kind: domain.ClauseOwnerEquals, OwnerID: ownerID}},
	})
}

// Find translates filter into WHERE clauses joined with AND.
func (r *repo) Find(ctx context.Context, db *gorm.DB, filter domain.Filter) ([]domain.Order, error) {
	if filter.Kind == domain.FilterMatchNone {
		return []domain.Order{}, nil
	}

	stmt := db.WithContext(ctx).Model(&orderRecord{})
	if filter.Kind == domain.FilterAnd {
		for _, clause := range filter.Clauses {
			switch clause.Kind {
			case domain.ClauseOwnerEquals:
				stmt = stmt.Where("order_owner = ?", clause.OwnerID)
			case domain.ClauseIssuedOnOrAfter:
				stmt = stmt.Where("issue_date >= ?", clause.At.UTC())
			case domain.ClauseIssuedOnOrBefore:
				stmt = stmt.Where("issue_date <= ?", clause.At.UTC())
			default:
				return nil, fmt.Errorf("unsupported order clause %d", clause.Kind)
			}
		}
	}

	var records []orderRecord
	if err := stmt.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records)
}

func (r *repo) DeleteByID(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM orders WHERE id = ?`, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
