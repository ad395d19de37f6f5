package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lumapay/corebank/internal/adapter/http/dto"
	"github.com/lumapay/corebank/internal/usecase"
)

// GiftCardHandler handles gift card purchase requests.
type GiftCardHandler struct {
	ledgerUC *usecase.LedgerUseCase
}

// NewGiftCardHandler creates a new GiftCardHandler.
func NewGiftCardHandler(ledgerUC *usecase.LedgerUseCase) *GiftCardHandler {
	return &GiftCardHandler{ledgerUC: ledgerUC}
}

// Purchase debits the caller's wallet and issues a gift card code.
func (h *GiftCardHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req dto.GiftCardPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	result, err := h.ledgerUC.PurchaseGiftCard(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GiftCardPurchaseFromResult(result))
}
