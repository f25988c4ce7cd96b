package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/smallbiznis/quickstep/internal/order/domain"
)

type fakeOrderService struct {
	created    *orderdomain.CreateRequest
	dateRange  *orderdomain.DateRangeRequest
	ownerQuery string
	views      []orderdomain.View
	err        error
}

func (f *fakeOrderService) Create(ctx context.Context, req orderdomain.CreateRequest) (*orderdomain.View, error) {
	_ = ctx
	f.created = &req
	if f.err != nil {
		return nil, f.err
	}
	return &orderdomain.View{ID: "501", OwnerID: req.OwnerID, ProductIDs: req.ProductIDs, Products: nil}, nil
}

func (f *fakeOrderService) Update(ctx context.Context, req orderdomain.UpdateRequest) (*orderdomain.View, error) {
	_ = ctx
	if f.err != nil {
		return nil, f.err
	}
	return &orderdomain.View{ID: req.ID}, nil
}

func (f *fakeOrderService) Get(ctx context.Context, id string) (*orderdomain.View, error) {
	_ = ctx
	if f.err != nil {
		return nil, f.err
	}
	return &orderdomain.View{ID: id}, nil
}

func (f *fakeOrderService) List(ctx context.Context) ([]orderdomain.View, error) {
	_ = ctx
	return f.views, f.err
}

func (f *fakeOrderService) ListByOwner(ctx context.Context, ownerID string) ([]orderdomain.View, error) {
	_ = ctx
	f.ownerQuery = ownerID
	return f.views, f.err
}

func (f *fakeOrderService) ListByDateRange(ctx context.Context, req orderdomain.DateRangeRequest) ([]orderdomain.View, error) {
	_ = ctx
	f.dateRange = &req
	return f.views, f.err
}

func (f *fakeOrderService) Delete(ctx context.Context, id string) error {
	_ = ctx
	_ = id
	return f.err
}

func newOrderRouter(svc orderdomain.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	srv := &Server{engine: router, orderSvc: svc}
	srv.registerAPIRoutes()
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorPayload {
	t.Helper()
	var body errorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, resp.Body.String())
	}
	return body.Error
}

func TestCreateOrderReturnsLocation(t *testing.T) {
	svc := &fakeOrderService{}
	router := newOrderRouter(svc)

	resp := serve(router, http.MethodPost, "/api/orders/add", `{"owner_id":"10","product_ids":["1","2"]}`)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("Location"); got != "/api/orders/show/501" {
		t.Fatalf("unexpected location %q", got)
	}
	if svc.created == nil || svc.created.OwnerID != "10" || len(svc.created.ProductIDs) != 2 {
		t.Fatalf("unexpected create request %+v", svc.created)
	}
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	svc := &fakeOrderService{}
	router := newOrderRouter(svc)

	resp := serve(router, http.MethodPost, "/api/orders/add", `{"owner_id":`)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if svc.created != nil {
		t.Fatal("expected order service not to be called")
	}
}

func TestOrderErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		err    error
		status int
		code   string
	}{
		{name: "show_missing", method: http.MethodGet, path: "/api/orders/show/99", err: orderdomain.ErrNotFound, status: http.StatusNotFound},
		{name: "delete_missing", method: http.MethodDelete, path: "/api/orders/delete/99", err: orderdomain.ErrNotFound, status: http.StatusNotFound},
		{name: "edit_missing", method: http.MethodPut, path: "/api/orders/edit", body: `{"id":"99"}`, err: orderdomain.ErrNotFound, status: http.StatusNotFound},
		{name: "bad_id", method: http.MethodGet, path: "/api/orders/show/abc", err: orderdomain.ErrInvalidID, status: http.StatusBadRequest, code: "invalid_id"},
		{name: "bad_owner", method: http.MethodPost, path: "/api/orders/add", body: `{}`, err: orderdomain.ErrInvalidOwner, status: http.StatusBadRequest, code: "invalid_owner"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newOrderRouter(&fakeOrderService{err: tc.err})
			resp := serve(router, tc.method, tc.path, tc.body)

			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
			if tc.code != "" {
				payload := decodeError(t, resp)
				if len(payload.Errors) != 1 || payload.Errors[0].Code != tc.code {
					t.Fatalf("unexpected error payload %+v", payload)
				}
			}
		})
	}
}

func TestDeleteOrderReturnsNoContent(t *testing.T) {
	router := newOrderRouter(&fakeOrderService{})

	resp := serve(router, http.MethodDelete, "/api/orders/delete/1", "")

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", resp.Body.String())
	}
}

func TestSearchOrdersParsesQuery(t *testing.T) {
	svc := &fakeOrderService{views: []orderdomain.View{}}
	router := newOrderRouter(svc)

	resp := serve(router, http.MethodGet, "/api/orders/search?owner_id=10&start_date=2024-03-01&end_date=2024-03-05T18:00:00%2B02:00", "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	got := svc.dateRange
	if got == nil || got.OwnerID == nil || *got.OwnerID != 10 {
		t.Fatalf("unexpected owner filter %+v", got)
	}
	if !got.StartDate.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start date %s", got.StartDate)
	}
	if !got.EndDate.Equal(time.Date(2024, time.March, 5, 16, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end date %s", got.EndDate)
	}
	if body := resp.Body.String(); body != `{"data":[]}` {
		t.Fatalf("expected empty list body, got %s", body)
	}
}

func TestSearchOrdersRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"owner_id":   "/api/orders/search?owner_id=abc",
		"start_date": "/api/orders/search?start_date=03/01/2024",
		"end_date":   "/api/orders/search?end_date=tomorrow",
	}

	for field, path := range cases {
		t.Run(field, func(t *testing.T) {
			svc := &fakeOrderService{}
			router := newOrderRouter(svc)

			resp := serve(router, http.MethodGet, path, "")
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.Code)
			}
			payload := decodeError(t, resp)
			if len(payload.Errors) != 1 || payload.Errors[0].Field != field {
				t.Fatalf("unexpected error payload %+v", payload)
			}
			if svc.dateRange != nil {
				t.Fatal("expected order service not to be called")
			}
		})
	}
}

func TestListOrdersByOwnerPassesPathParam(t *testing.T) {
	svc := &fakeOrderService{views: []orderdomain.View{{ID: "1"}}}
	router := newOrderRouter(svc)

	resp := serve(router, http.MethodGet, "/api/orders/owner/42", "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if svc.ownerQuery != "42" {
		t.Fatalf("expected owner 42, got %q", svc.ownerQuery)
	}
}
