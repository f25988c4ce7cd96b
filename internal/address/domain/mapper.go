package domain

import "strconv"

func ToResponse(a *Address) Response {
	return Response{
		ID:          strconv.FormatInt(a.ID, 10),
		UserID:      strconv.FormatInt(a.UserID, 10),
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
		City:        a.City,
		State:       a.State,
		Zip:         a.Zip,
		Country:     a.Country,
	}
}
