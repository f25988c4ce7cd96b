package domain

import (
	"strconv"
	"time"

	productdomain "github.com/smallbiznis/quickstep/internal/product/domain"
	userdomain "github.com/smallbiznis/quickstep/internal/user/domain"
)

// View is an order with its references resolved. Products holds the rows
// that still exist, in the order the ids were stored. Owner is nil when the
// order has no owner or the owner row is gone.
type View struct {
	ID         string                   `json:"id"`
	OwnerID    string                   `json:"owner_id,omitempty"`
	Owner      *userdomain.Response     `json:"owner,omitempty"`
	ProductIDs []string                 `json:"product_ids"`
	Products   []productdomain.Response `json:"products"`
	IssueDate  time.Time                `json:"issue_date"`
}

func NewView(o Order, owner *userdomain.Response, products []productdomain.Response) View {
	if products == nil {
		products = []productdomain.Response{}
	}
	view := View{
		ID:         strconv.FormatInt(o.ID, 10),
		Owner:      owner,
		ProductIDs: make([]string, 0, len(o.ProductIDs)),
		Products:   products,
		IssueDate:  o.IssueDate,
	}
	if o.OwnerID != 0 {
		view.OwnerID = strconv.FormatInt(o.OwnerID, 10)
	}
	for _, id := range o.ProductIDs {
		view.ProductIDs = append(view.ProductIDs, strconv.FormatInt(id, 10))
	}
	return view
}
