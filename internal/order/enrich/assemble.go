package enrich

import (
	"github.com/samber/lo"
	"github.com/smallbiznis/quickstep/internal/order/domain"
	productdomain "github.com/smallbiznis/quickstep/internal/product/domain"
	userdomain "github.com/smallbiznis/quickstep/internal/user/domain"
)

// Lookup indexes fetched rows by id for one batch. On duplicate ids the last
// row wins.
type Lookup struct {
	products map[int64]productdomain.Product
	owners   map[int64]userdomain.User
}

func NewLookup(details Details) Lookup {
	return Lookup{
		products: lo.KeyBy(details.Products, func(p productdomain.Product) int64 { return p.ID }),
		owners:   lo.KeyBy(details.Owners, func(u userdomain.User) int64 { return u.ID }),
	}
}

// Assemble resolves one order. Products follow the stored id order with
// duplicates kept and unknown ids dropped. The owner is nil when unresolved.
func (l Lookup) Assemble(o domain.Order) domain.View {
	products := make([]productdomain.Response, 0, len(o.ProductIDs))
	for _, id := range o.ProductIDs {
		if p, ok := l.products[id]; ok {
			products = append(products, productdomain.ToResponse(&p))
		}
	}

	var owner *userdomain.Response
	if u, ok := l.owners[o.OwnerID]; ok && o.OwnerID != 0 {
		resp := userdomain.ToResponse(&u)
		owner = &resp
	}

	return domain.NewView(o, owner, products)
}

// AssembleAll resolves every order against details, preserving input order.
func AssembleAll(orders []domain.Order, details Details) []domain.View {
	lookup := NewLookup(details)
	views := make([]domain.View, 0, len(orders))
	for _, o := range orders {
		views = append(views, lookup.Assemble(o))
	}
	return views
}
