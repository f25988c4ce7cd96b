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
	ListByCountry(ctx context.Context, country string) ([]Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	UserID      string  `json:"user_id"`
	Street      string  `json:"street"`
	HouseNumber string  `json:"house_number"`
	City        string  `json:"city"`
	State       *string `json:"state"`
	Zip         string  `json:"zip_code"`
	Country     string  `json:"country"`
}

type UpdateRequest struct {
	ID          string  `json:"id"`
	UserID      *string `json:"user_id"`
	Street      *string `json:"street"`
	HouseNumber *string `json:"house_number"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Zip         *string `json:"zip_code"`
	Country     *string `json:"country"`
}

type Response struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Street      string  `json:"street"`
	HouseNumber string  `json:"house_number"`
	City        string  `json:"city"`
	State       *string `json:"state,omitempty"`
	Zip         string  `json:"zip_code"`
	Country     string  `json:"country"`
}

var (
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidUser        = errors.New("invalid_user")
	ErrInvalidStreet      = errors.New("invalid_street")
	ErrInvalidHouseNumber = errors.New("invalid_house_number")
	ErrInvalidCity        = errors.New("invalid_city")
	ErrInvalidZip         = errors.New("invalid_zip_code")
	ErrInvalidCountry     = errors.New("invalid_country")
	ErrNotFound           = errors.New("not_found")
)
