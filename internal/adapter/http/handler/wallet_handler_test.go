package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lumapay/corebank/internal/adapter/http/dto"
	"github.com/lumapay/corebank/internal/adapter/http/middleware"
	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/usecase"
	"github.com/lumapay/corebank/internal/usecase/mocks"
)

func TestWalletHandler_Get_Success(t *testing.T) {
	walletRepo := mocks.NewMockWalletRepository()
	seedWallet(walletRepo, "user-1", "123.45")
	h := NewWalletHandler(usecase.NewWalletUseCase(walletRepo, mocks.NewMockGiftCardRepository()))

	req := httptest.NewRequest(http.MethodGet, "/api/carteira", nil)
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, &domain.User{ID: "user-1", Role: domain.RoleUser})
	rec := httptest.NewRecorder()
	h.Get(rec, req.WithContext(ctx))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.WalletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.UserID != "user-1" || resp.Moeda != "BRL" {
		t.Errorf("unexpected wallet: %+v", resp)
	}
	if !resp.Saldo.Equal(decimal.RequireFromString("123.45")) {
		t.Errorf("expected saldo 123.45, got %s", resp.Saldo)
	}
}

func TestWalletHandler_Get_Unauthenticated(t *testing.T) {
	h := NewWalletHandler(usecase.NewWalletUseCase(mocks.NewMockWalletRepository(), mocks.NewMockGiftCardRepository()))

	req := httptest.NewRequest(http.MethodGet, "/api/carteira", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
