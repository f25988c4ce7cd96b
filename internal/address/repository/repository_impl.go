package repository

import (
	"context"

	"github.com/smallbiznis/quickstep/internal/address/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const selectAddresses = `SELECT id, user_id, street, house_number, city, state, zip_code, country FROM addresses`

func (r *repo) Insert(ctx context.Context, db *gorm.DB, address *domain.Address) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO addresses (id, user_id, street, house_number, city, state, zip_code, country)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		address.ID,
		address.UserID,
		address.Street,
		address.HouseNumber,
		address.City,
		address.State,
		address.Zip,
		address.Country,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, address *domain.Address) error {
	if address == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE addresses
		 SET user_id = ?, street = ?, house_number = ?, city = ?, state = ?, zip_code = ?, country = ?
		 WHERE id = ?`,
		address.UserID,
		address.Street,
		address.HouseNumber,
		address.City,
		address.State,
		address.Zip,
		address.Country,
		address.ID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Address, error) {
	var a domain.Address
	if err := db.WithContext(ctx).Raw(selectAddresses+` WHERE id = ?`, id).Scan(&a).Error; err != nil {
		return nil, err
	}
	if a.ID == 0 {
		return nil, nil
	}
	return &a, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Address, error) {
	items := []domain.Address{}
	if err := db.WithContext(ctx).Raw(selectAddresses + ` ORDER BY id ASC`).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByCountry(ctx context.Context, db *gorm.DB, country string) ([]domain.Address, error) {
	items := []domain.Address{}
	err := db.WithContext(ctx).Raw(selectAddresses+` WHERE country = ? ORDER BY id ASC`, country).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteByID(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM addresses WHERE id = ?`, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
