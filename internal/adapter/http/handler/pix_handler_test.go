package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lumapay/corebank/internal/adapter/http/dto"
	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/usecase"
	"github.com/lumapay/corebank/internal/usecase/mocks"
)

func newLedgerHandlerFixture() (*usecase.LedgerUseCase, *mocks.MockWalletRepository, *mocks.MockTransactionRepository) {
	walletRepo := mocks.NewMockWalletRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	giftCardRepo := mocks.NewMockGiftCardRepository()
	outboxRepo := mocks.NewMockOutboxRepository()
	txMgr := mocks.NewMockTransactionManager()
	idGen := mocks.NewMockIDGenerator()

	uc := usecase.NewLedgerUseCase(txMgr, walletRepo, txnRepo, giftCardRepo, outboxRepo, idGen, mocks.NewMockRetrier(), nil)

	return uc, walletRepo, txnRepo
}

func seedWallet(repo *mocks.MockWalletRepository, userID, balance string) {
	repo.Seed(&domain.Wallet{
		UserID:   userID,
		Balance:  decimal.RequireFromString(balance),
		Currency: "BRL",
	})
}

func postPix(t *testing.T, h *PixHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/pix/transferir", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Transfer(rec, req)

	return rec
}

func TestPixHandler_Transfer_Success(t *testing.T) {
	uc, walletRepo, txnRepo := newLedgerHandlerFixture()
	seedWallet(walletRepo, "user-1", "100.00")
	h := NewPixHandler(uc)

	rec := postPix(t, h, `{"user_id":"user-1","chave_pix":"maria@example.com","valor":40}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PixTransferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "success" {
		t.Errorf("expected status success, got %s", resp.Status)
	}
	if !strings.HasPrefix(resp.TransactionID, "PIX-") {
		t.Errorf("expected PIX- prefixed transaction id, got %s", resp.TransactionID)
	}
	if !resp.SaldoRestante.Equal(decimal.RequireFromString("60.00")) {
		t.Errorf("expected saldo_restante 60.00, got %s", resp.SaldoRestante)
	}
	if txnRepo.Count() != 1 {
		t.Errorf("expected one transaction record, got %d", txnRepo.Count())
	}
}

func TestPixHandler_Transfer_SequentialUntilInsufficient(t *testing.T) {
	uc, walletRepo, txnRepo := newLedgerHandlerFixture()
	seedWallet(walletRepo, "user-1", "100.00")
	h := NewPixHandler(uc)

	body := `{"user_id":"user-1","chave_pix":"maria@example.com","valor":40}`

	// Without an Idempotency-Key header every submission debits again.
	for i, wantBalance := range []string{"60.00", "20.00"} {
		rec := postPix(t, h, body)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}

		var resp dto.PixTransferResponse
		json.Unmarshal(rec.Body.Bytes(), &resp)
		if !resp.SaldoRestante.Equal(decimal.RequireFromString(wantBalance)) {
			t.Fatalf("request %d: expected saldo %s, got %s", i+1, wantBalance, resp.SaldoRestante)
		}
	}

	rec := postPix(t, h, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on insufficient funds, got %d", rec.Code)
	}

	if !walletRepo.Balance("user-1").Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("expected balance to remain 20.00, got %s", walletRepo.Balance("user-1"))
	}
	if txnRepo.Count() != 2 {
		t.Errorf("expected two transaction records, got %d", txnRepo.Count())
	}
}

func TestPixHandler_Transfer_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{bad json`},
		{"missing user_id", `{"chave_pix":"k","valor":10}`},
		{"missing chave_pix", `{"user_id":"user-1","valor":10}`},
		{"zero amount", `{"user_id":"user-1","chave_pix":"k","valor":0}`},
		{"negative amount", `{"user_id":"user-1","chave_pix":"k","valor":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, walletRepo, txnRepo := newLedgerHandlerFixture()
			seedWallet(walletRepo, "user-1", "100.00")
			h := NewPixHandler(uc)

			rec := postPix(t, h, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if resp.Status != "error" {
				t.Errorf("expected status error, got %s", resp.Status)
			}
			if txnRepo.Count() != 0 {
				t.Errorf("expected no transaction records, got %d", txnRepo.Count())
			}
		})
	}
}

func TestPixHandler_Transfer_WalletNotFound(t *testing.T) {
	uc, _, _ := newLedgerHandlerFixture()
	h := NewPixHandler(uc)

	rec := postPix(t, h, `{"user_id":"ghost","chave_pix":"k","valor":10}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
