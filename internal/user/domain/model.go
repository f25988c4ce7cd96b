package domain

type User struct {
	ID                int64  `json:"id" gorm:"primaryKey"`
	FirstName         string `json:"first_name" gorm:"column:first_name;type:text;not null"`
	LastName          string `json:"last_name" gorm:"column:last_name;type:text;not null"`
	Email             string `json:"email" gorm:"column:email;type:text;not null"`
	PasswordHash      string `json:"-" gorm:"column:password_hash;type:text;not null"`
	DeliveryAddressID *int64 `json:"delivery_address_id,omitempty" gorm:"column:delivery_address_id"`
}

func (User) TableName() string { return "users" }

// SameEntity reports whether both values refer to the same persisted user.
func (u User) SameEntity(other User) bool {
	return u.ID != 0 && u.ID == other.ID
}
