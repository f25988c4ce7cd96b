package repository

import (
	"context"

	"github.com/smallbiznis/quickstep/internal/user/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const selectUsers = `SELECT id, first_name, last_name, email, password_hash, delivery_address_id FROM users`

func (r *repo) Insert(ctx context.Context, db *gorm.DB, user *domain.User) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO users (id, first_name, last_name, email, password_hash, delivery_address_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.DeliveryAddressID,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, user *domain.User) error {
	if user == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE users
		 SET first_name = ?, last_name = ?, email = ?, password_hash = ?, delivery_address_id = ?
		 WHERE id = ?`,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.DeliveryAddressID,
		user.ID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Raw(selectUsers+` WHERE id = ?`, id).Scan(&u).Error
	if err != nil {
		return nil, err
	}
	if u.ID == 0 {
		return nil, nil
	}
	return &u, nil
}

func (r *repo) FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]domain.User, error) {
	items := []domain.User{}
	if len(ids) == 0 {
		return items, nil
	}
	err := db.WithContext(ctx).Raw(selectUsers+` WHERE id IN ? ORDER BY id ASC`, ids).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Raw(selectUsers+` WHERE email = ? ORDER BY id ASC LIMIT 1`, email).Scan(&u).Error
	if err != nil {
		return nil, err
	}
	if u.ID == 0 {
		return nil, nil
	}
	return &u, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	items := []domain.User{}
	err := db.WithContext(ctx).Raw(selectUsers + ` ORDER BY id ASC`).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteByID(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM users WHERE id = ?`, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
