package domain

import "strconv"

func ToResponse(p *Product) Response {
	return Response{
		ID:       strconv.FormatInt(p.ID, 10),
		Name:     p.Name,
		Type:     p.Type,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}
