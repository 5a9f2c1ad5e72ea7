package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rdmartins/drilltrack-backend/internal/analytics"
	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	"github.com/rdmartins/drilltrack-backend/pkg/enums"
	pkgerrors "github.com/rdmartins/drilltrack-backend/pkg/errors"
)

type stubInventoryService struct {
	items       []inventory.ToolItem
	itemsErr    error
	withdrawals []inventory.Withdrawal
	record      inventory.Withdrawal
	applyErr    error
	state       inventory.State

	lastFilter  string
	lastLimit   int
	lastRequest inventory.WithdrawalRequest
}

func (s *stubInventoryService) ApplyWithdrawal(ctx context.Context, input inventory.WithdrawalRequest) (inventory.Withdrawal, error) {
	s.lastRequest = input
	return s.record, s.applyErr
}

func (s *stubInventoryService) Items(ctx context.Context, modelFilter string) ([]inventory.ToolItem, error) {
	s.lastFilter = modelFilter
	return s.items, s.itemsErr
}

func (s *stubInventoryService) Withdrawals(ctx context.Context, limit int) []inventory.Withdrawal {
	s.lastLimit = limit
	return s.withdrawals
}

func (s *stubInventoryService) Snapshot(ctx context.Context) inventory.State {
	return s.state
}

func TestListInventorySuccess(t *testing.T) {
	svc := &stubInventoryService{items: []inventory.ToolItem{
		{ID: "t51-p", Name: "Punho T51", Model: enums.ToolModelT51, Category: enums.CategoryPunho, Stock: 4, MinStock: 5},
		{ID: "t51-h", Name: "Haste T51", Model: enums.ToolModelT51, Category: enums.CategoryHaste, Stock: 25, MinStock: 8},
	}}
	handler := ListInventory(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []itemView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 items got %d", len(envelope.Data))
	}
	if envelope.Data[0].Alert != analytics.AlertCritical {
		t.Fatalf("expected critical alert got %s", envelope.Data[0].Alert)
	}
	if envelope.Data[1].Alert != analytics.AlertOk {
		t.Fatalf("expected ok alert got %s", envelope.Data[1].Alert)
	}
}

func TestListInventoryPassesModelFilter(t *testing.T) {
	svc := &stubInventoryService{}
	handler := ListInventory(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory?model=T51", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastFilter != "T51" {
		t.Fatalf("expected filter T51 got %q", svc.lastFilter)
	}
}

func TestListInventoryUnknownModel(t *testing.T) {
	svc := &stubInventoryService{itemsErr: pkgerrors.New(pkgerrors.CodeValidation, "unknown tool model")}
	handler := ListInventory(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory?model=T99", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestListCriticalInventoryFiltersItems(t *testing.T) {
	svc := &stubInventoryService{state: inventory.State{Inventory: []inventory.ToolItem{
		{ID: "t51-p", Stock: 5, MinStock: 5},
		{ID: "t51-h", Stock: 25, MinStock: 8},
		{ID: "t45-b35", Stock: 2, MinStock: 15},
	}}}
	handler := ListCriticalInventory(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/critical", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []itemView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 critical items got %d", len(envelope.Data))
	}
	if envelope.Data[0].ID != "t51-p" || envelope.Data[1].ID != "t45-b35" {
		t.Fatalf("unexpected critical items: %+v", envelope.Data)
	}
}

func TestListInventoryNilService(t *testing.T) {
	handler := ListInventory(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
