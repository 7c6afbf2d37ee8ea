package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/iho/bizledger/internal/adapter/http/dto"
	"github.com/iho/bizledger/internal/domain"
	"github.com/iho/bizledger/internal/usecase"
)

type customerServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error)
	getFn    func(ctx context.Context, id string) (*domain.Customer, error)
	listFn   func(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error)
}

func (s *customerServiceStub) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
	return s.createFn(ctx, input)
}

func (s *customerServiceStub) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.getFn(ctx, id)
}

func (s *customerServiceStub) ListCustomers(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error) {
	return s.listFn(ctx, input)
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	customer := &domain.Customer{
		ID:   "cust-1",
		Name: "Sharma Traders",
	}

	var captured usecase.CreateCustomerInput
	handler := NewCustomerHandler(&customerServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
			captured = input
			return customer, nil
		},
		getFn:  func(ctx context.Context, id string) (*domain.Customer, error) { return nil, nil },
		listFn: func(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error) { return nil, nil },
	})

	body, _ := json.Marshal(dto.CreateCustomerRequest{
		Name:  "Sharma Traders",
		Phone: "+91 98765 43210",
	})

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Name != "Sharma Traders" || captured.Phone != "+91 98765 43210" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.CustomerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "cust-1" {
		t.Fatalf("expected customer ID cust-1, got %s", resp.ID)
	}
}

func TestCustomerHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
			t.Fatal("CreateCustomer should not be called for invalid payload")
			return nil, nil
		},
		getFn:  func(ctx context.Context, id string) (*domain.Customer, error) { return nil, nil },
		listFn: func(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCustomerHandler_Create_InvalidName(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
			return nil, domain.ErrInvalidCustomerName
		},
		getFn:  func(ctx context.Context, id string) (*domain.Customer, error) { return nil, nil },
		listFn: func(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error) { return nil, nil },
	})

	body, _ := json.Marshal(dto.CreateCustomerRequest{Name: "  "})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCustomerHandler_Get(t *testing.T) {
	customer := &domain.Customer{ID: "cust-1", Name: "Sharma Traders"}
	handler := NewCustomerHandler(&customerServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Customer, error) {
			if id != "cust-1" {
				t.Fatalf("expected id cust-1, got %s", id)
			}
			return customer, nil
		},
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/customers/cust-1", nil)
	req = setChiURLParam(req, "id", "cust-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Customer, error) {
			return nil, domain.ErrCustomerNotFound
		},
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/customers/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCustomerHandler_List(t *testing.T) {
	handler := NewCustomerHandler(&customerServiceStub{
		listFn: func(ctx context.Context, input usecase.ListCustomersInput) ([]*domain.Customer, error) {
			if input.Limit != 5 || input.Offset != 2 {
				t.Fatalf("expected limit=5 offset=2, got %+v", input)
			}
			return []*domain.Customer{{ID: "cust-1"}, {ID: "cust-2"}}, nil
		},
		createFn: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) { return nil, nil },
		getFn:    func(ctx context.Context, id string) (*domain.Customer, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/customers?limit=5&offset=2", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListCustomersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(resp.Customers))
	}
}

func TestMapDomainError(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{domain.ErrCustomerNotFound, http.StatusNotFound},
		{domain.ErrEntryNotFound, http.StatusNotFound},
		{domain.ErrInvalidEntryType, http.StatusBadRequest},
		{domain.ErrNegativeAmount, http.StatusBadRequest},
		{domain.ErrInvalidCustomerName, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		if got := mapDomainError(tc.err); got != tc.expected {
			t.Errorf("mapDomainError(%v) = %d, expected %d", tc.err, got, tc.expected)
		}
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
