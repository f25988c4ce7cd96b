package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	DeliveryAddressID *string `json:"delivery_address_id"`
}

// UpdateRequest changes only the fields that are set. An empty
// DeliveryAddressID clears the reference.
type UpdateRequest struct {
	ID                string  `json:"id"`
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	Email             *string `json:"email"`
	Password          *string `json:"password"`
	DeliveryAddressID *string `json:"delivery_address_id"`
}

type Response struct {
	ID                string  `json:"id"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Email             string  `json:"email"`
	DeliveryAddressID *string `json:"delivery_address_id,omitempty"`
}

const MinPasswordLength = 8

var (
	ErrInvalidID              = errors.New("invalid_id")
	ErrInvalidFirstName       = errors.New("invalid_first_name")
	ErrInvalidLastName        = errors.New("invalid_last_name")
	ErrInvalidEmail           = errors.New("invalid_email")
	ErrInvalidPassword        = errors.New("invalid_password")
	ErrInvalidDeliveryAddress = errors.New("invalid_delivery_address")
	ErrDuplicateEmail         = errors.New("duplicate_email")
	ErrNotFound               = errors.New("not_found")
)
