package enrich

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/quickstep/internal/order/domain"
	productdomain "github.com/smallbiznis/quickstep/internal/product/domain"
	userdomain "github.com/smallbiznis/quickstep/internal/user/domain"
)

var issued = time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)

func product(id int64, name string) productdomain.Product {
	return productdomain.Product{ID: id, Name: name, Type: 1, Price: decimal.NewFromInt(id), Quantity: 1}
}

func user(id int64, first string) userdomain.User {
	return userdomain.User{ID: id, FirstName: first, LastName: "Doe", Email: first + "@example.com"}
}

func productResponses(products ...productdomain.Product) []productdomain.Response {
	out := make([]productdomain.Response, 0, len(products))
	for i := range products {
		out = append(out, productdomain.ToResponse(&products[i]))
	}
	return out
}

func ownerResponse(u userdomain.User) *userdomain.Response {
	resp := userdomain.ToResponse(&u)
	return &resp
}

func TestAssembleKeepsMultiplicityAndDropsStaleIDs(t *testing.T) {
	p5 := product(5, "P5")
	lookup := NewLookup(Details{Products: []productdomain.Product{p5}})

	view := lookup.Assemble(domain.Order{ID: 1, ProductIDs: []int64{5, 7, 5}, IssueDate: issued})

	if diff := cmp.Diff(productResponses(p5, p5), view.Products); diff != "" {
		t.Fatalf("products mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"5", "7", "5"}, view.ProductIDs); diff != "" {
		t.Fatalf("stored ids should be reported unchanged (-want +got):\n%s", diff)
	}
}

func TestAssembleMissingOwnerIsAbsent(t *testing.T) {
	lookup := NewLookup(Details{})

	view := lookup.Assemble(domain.Order{ID: 1, OwnerID: 10, IssueDate: issued})

	if view.Owner != nil {
		t.Fatalf("expected no owner, got %+v", view.Owner)
	}
	if view.OwnerID != "10" {
		t.Fatalf("expected owner id to be kept, got %q", view.OwnerID)
	}
	if view.Products == nil || len(view.Products) != 0 {
		t.Fatalf("expected empty products, got %v", view.Products)
	}
}

func TestAssembleIsIdempotent(t *testing.T) {
	details := Details{
		Products: []productdomain.Product{product(1, "A"), product(2, "B")},
		Owners:   []userdomain.User{user(10, "alice")},
	}
	orders := []domain.Order{
		{ID: 1, OwnerID: 10, ProductIDs: []int64{2, 1, 3}, IssueDate: issued},
		{ID: 2, OwnerID: 11, ProductIDs: []int64{1}, IssueDate: issued},
	}

	first := AssembleAll(orders, details)
	second := AssembleAll(orders, details)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("assembly is not deterministic (-first +second):\n%s", diff)
	}
}

func TestAssembleAllAliceAndBob(t *testing.T) {
	alice := user(1, "alice")
	bob := user(2, "bob")
	p10 := product(10, "P10")
	p11 := product(11, "P11")
	orders := []domain.Order{
		{ID: 100, OwnerID: 1, ProductIDs: []int64{10, 11}, IssueDate: issued},
		{ID: 101, OwnerID: 2, ProductIDs: []int64{11}, IssueDate: issued},
	}

	ids := CollectReferencedIDs(orders)
	if diff := cmp.Diff(ReferencedIDs{ProductIDs: []int64{10, 11}, OwnerIDs: []int64{1, 2}}, ids); diff != "" {
		t.Fatalf("referenced ids mismatch (-want +got):\n%s", diff)
	}

	got := AssembleAll(orders, Details{
		Products: []productdomain.Product{p11, p10},
		Owners:   []userdomain.User{bob, alice},
	})

	want := []domain.View{
		domain.NewView(orders[0], ownerResponse(alice), productResponses(p10, p11)),
		domain.NewView(orders[1], ownerResponse(bob), productResponses(p11)),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("views mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupLastRowWins(t *testing.T) {
	lookup := NewLookup(Details{Products: []productdomain.Product{product(1, "old"), product(1, "new")}})

	view := lookup.Assemble(domain.Order{ID: 1, ProductIDs: []int64{1}})

	if len(view.Products) != 1 || view.Products[0].Name != "new" {
		t.Fatalf("expected the last fetched row, got %+v", view.Products)
	}
}
