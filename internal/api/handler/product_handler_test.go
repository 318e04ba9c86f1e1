package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crudify/crudify-server/internal/core/domain"
	"github.com/crudify/crudify-server/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, input ports.ProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) (bool, error)
	searchFn func(ctx context.Context, substring string) ([]*domain.Product, error)
	filterFn func(ctx context.Context, threshold int) ([]*domain.Product, error)
}

func (s *stubProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) Delete(ctx context.Context, id string) (bool, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubProductService) SearchByName(ctx context.Context, substring string) ([]*domain.Product, error) {
	return s.searchFn(ctx, substring)
}

func (s *stubProductService) FilterByMinQuantity(ctx context.Context, threshold int) ([]*domain.Product, error) {
	return s.filterFn(ctx, threshold)
}

func sampleProduct() *domain.Product {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Product{
		ID:          "p-1",
		Name:        "Widget",
		Description: "d",
		Price:       99.99,
		Quantity:    10,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newProductContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductHandler_List(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]*domain.Product, error) {
			return []*domain.Product{sampleProduct()}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodGet, "/api/products", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "p-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_List_Empty(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]*domain.Product, error) {
			return []*domain.Product{}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodGet, "/api/products", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Empty list renders as [], never null.
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty json array, got %s", rec.Body.String())
	}
}

func TestProductHandler_Get_Success(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			if id != "p-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return sampleProduct(), nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodGet, "/api/products/p-1", "")
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodGet, "/api/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
			if input.Name != "Widget" || input.Price != 99.99 || input.Quantity != 10 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return sampleProduct(), nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodPost, "/api/products",
		`{"name":"Widget","description":"d","price":99.99,"quantity":10}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

// Zero price and quantity are valid; only negatives fail validation.
func TestProductHandler_Create_ZeroValuesAllowed(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
			return sampleProduct(), nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodPost, "/api/products",
		`{"name":"Widget","description":"d","price":0,"quantity":0}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_NegativePrice(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodPost, "/api/products",
		`{"name":"Widget","description":"d","price":-1,"quantity":10}`)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProductHandler_Create_MissingName(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodPost, "/api/products",
		`{"description":"d","price":1,"quantity":1}`)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProductHandler_Update_Success(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
			if id != "p-1" || input.Name != "Gadget" {
				t.Fatalf("unexpected args: %s %+v", id, input)
			}
			p := sampleProduct()
			p.Name = input.Name
			return p, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodPut, "/api/products/p-1",
		`{"name":"Gadget","description":"d","price":1,"quantity":2}`)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodPut, "/api/products/missing",
		`{"name":"Gadget","description":"d","price":1,"quantity":2}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id string) (bool, error) {
			return true, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodDelete, "/api/products/p-1", "")
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodDelete, "/api/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_Search(t *testing.T) {
	stub := &stubProductService{
		searchFn: func(ctx context.Context, substring string) ([]*domain.Product, error) {
			if substring != "wid" {
				t.Fatalf("unexpected substring: %s", substring)
			}
			return []*domain.Product{sampleProduct()}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodGet, "/api/products/search?name=wid", "")
	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_MinQuantity(t *testing.T) {
	stub := &stubProductService{
		filterFn: func(ctx context.Context, threshold int) ([]*domain.Product, error) {
			if threshold != 9 {
				t.Fatalf("unexpected threshold: %d", threshold)
			}
			return []*domain.Product{sampleProduct()}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodGet, "/api/products/quantity?min=9", "")
	if err := handler.MinQuantity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_MinQuantity_BadThreshold(t *testing.T) {
	stub := &stubProductService{
		filterFn: func(ctx context.Context, threshold int) ([]*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodGet, "/api/products/quantity?min=lots", "")
	_ = handler.MinQuantity(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
