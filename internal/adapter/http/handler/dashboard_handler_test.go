package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumapay/corebank/internal/adapter/http/dto"
	"github.com/lumapay/corebank/internal/adapter/http/middleware"
	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/usecase"
	"github.com/lumapay/corebank/internal/usecase/mocks"
)

func newDashboardFixture() (*DashboardHandler, *mocks.MockSubaccountRepository, *mocks.MockTransactionRepository) {
	subRepo := mocks.NewMockSubaccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewDashboardUseCase(subRepo, txnRepo)

	return NewDashboardHandler(uc), subRepo, txnRepo
}

func getDashboardAs(t *testing.T, h *DashboardHandler, user *domain.User) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	if user != nil {
		ctx := context.WithValue(req.Context(), middleware.UserContextKey, user)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	return rec
}

func TestDashboardHandler_Get_Success(t *testing.T) {
	h, subRepo, txnRepo := newDashboardFixture()

	subRepo.Seed(&domain.Subaccount{ID: "sub-1", UserID: "user-1", Name: "Conta Principal"})

	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for i, profit := range []string{"10", "20", "30"} {
		txnRepo.Create(context.Background(), nil, &domain.Transaction{
			ID:        "PIX-" + string(rune('a'+i)),
			UserID:    "user-1",
			Kind:      domain.KindPayout,
			Amount:    decimal.RequireFromString("40"),
			Currency:  "BRL",
			Profit:    decimal.RequireFromString(profit),
			Status:    domain.StatusCompleted,
			CreatedAt: created.Add(time.Duration(i) * time.Hour),
		})
	}

	rec := getDashboardAs(t, h, &domain.User{ID: "user-1", Role: domain.RoleUser})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Fatal("expected success true")
	}
	if resp.Data.TotalTransacoes != 3 {
		t.Errorf("expected totalTransacoes 3, got %d", resp.Data.TotalTransacoes)
	}
	if !resp.Data.LucroTotal.Equal(decimal.RequireFromString("60")) {
		t.Errorf("expected lucroTotal 60, got %s", resp.Data.LucroTotal)
	}
	if len(resp.Data.TransacoesPorMes) != 1 {
		t.Fatalf("expected one month group, got %d", len(resp.Data.TransacoesPorMes))
	}

	month := resp.Data.TransacoesPorMes[0]
	if month.Mes != "03/2025" || month.Transacoes != 3 || !month.Lucro.Equal(decimal.RequireFromString("60")) {
		t.Errorf("unexpected month group: %+v", month)
	}
	if len(resp.Data.TransacoesRecentes) != 3 {
		t.Errorf("expected 3 recent transactions, got %d", len(resp.Data.TransacoesRecentes))
	}
}

func TestDashboardHandler_Get_Unauthenticated(t *testing.T) {
	h, _, _ := newDashboardFixture()

	rec := getDashboardAs(t, h, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("expected success false")
	}
	if resp.Error == "" {
		t.Error("expected an error message")
	}
}

func TestDashboardHandler_Get_NoSubaccount(t *testing.T) {
	h, _, _ := newDashboardFixture()

	rec := getDashboardAs(t, h, &domain.User{ID: "user-1", Role: domain.RoleUser})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
