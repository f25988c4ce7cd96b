package domain

import "strconv"

func ToResponse(u *User) Response {
	resp := Response{
		ID:        strconv.FormatInt(u.ID, 10),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
	if u.DeliveryAddressID != nil {
		id := strconv.FormatInt(*u.DeliveryAddressID, 10)
		resp.DeliveryAddressID = &id
	}
	return resp
}
