package domain

import "time"

// Order references its owner and products by id only. OwnerID is zero when
// the order has no owner. ProductIDs keeps insertion order and duplicates.
type Order struct {
	ID         int64
	OwnerID    int64
	ProductIDs []int64
	IssueDate  time.Time
}

// SameEntity reports whether both values refer to the same persisted order.
func (o Order) SameEntity(other Order) bool {
	return o.ID != 0 && o.ID == other.ID
}
