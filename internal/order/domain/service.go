package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*View, error)
	Update(ctx context.Context, req UpdateRequest) (*View, error)
	Get(ctx context.Context, id string) (*View, error)
	List(ctx context.Context) ([]View, error)
	ListByOwner(ctx context.Context, ownerID string) ([]View, error)
	ListByDateRange(ctx context.Context, req DateRangeRequest) ([]View, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	OwnerID    string     `json:"owner_id"`
	ProductIDs []string   `json:"product_ids"`
	IssueDate  *time.Time `json:"issue_date"`
}

// UpdateRequest replaces only the fields that are set. A nil ProductIDs keeps
// the stored list; an empty one clears it.
type UpdateRequest struct {
	ID         string     `json:"id"`
	OwnerID    *string    `json:"owner_id"`
	ProductIDs []string   `json:"product_ids"`
	IssueDate  *time.Time `json:"issue_date"`
}

// DateRangeRequest bounds are calendar dates; the time of day is ignored.
type DateRangeRequest struct {
	OwnerID   *int64
	StartDate *time.Time
	EndDate   *time.Time
}

var (
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidOwner     = errors.New("invalid_owner")
	ErrInvalidProductID = errors.New("invalid_product_id")
	ErrNotFound         = errors.New("not_found")
)
