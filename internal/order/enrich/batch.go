package enrich

import (
	"github.com/samber/lo"
	"github.com/smallbiznis/quickstep/internal/order/domain"
)

// ReferencedIDs is the distinct set of rows a batch of orders points at, in
// first-seen order.
type ReferencedIDs struct {
	ProductIDs []int64
	OwnerIDs   []int64
}

// CollectReferencedIDs gathers every product id and every set owner id across
// orders, without duplicates.
func CollectReferencedIDs(orders []domain.Order) ReferencedIDs {
	productIDs := lo.Uniq(lo.FlatMap(orders, func(o domain.Order, _ int) []int64 {
		return o.ProductIDs
	}))
	ownerIDs := lo.Uniq(lo.FilterMap(orders, func(o domain.Order, _ int) (int64, bool) {
		return o.OwnerID, o.OwnerID != 0
	}))
	return ReferencedIDs{
		ProductIDs: productIDs,
		OwnerIDs:   ownerIDs,
	}
}
