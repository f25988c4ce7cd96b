package domain

type Address struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	UserID      int64   `json:"user_id" gorm:"column:user_id;not null"`
	Street      string  `json:"street" gorm:"type:text;not null"`
	HouseNumber string  `json:"house_number" gorm:"column:house_number;type:text;not null"`
	City        string  `json:"city" gorm:"type:text;not null"`
	State       *string `json:"state,omitempty" gorm:"type:text"`
	Zip         string  `json:"zip_code" gorm:"column:zip_code;type:text;not null"`
	Country     string  `json:"country" gorm:"type:text;not null"`
}

func (Address) TableName() string { return "addresses" }

// SameEntity reports whether both values refer to the same persisted address.
func (a Address) SameEntity(other Address) bool {
	return a.ID != 0 && a.ID == other.ID
}
