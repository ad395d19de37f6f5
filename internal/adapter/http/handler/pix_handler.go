package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lumapay/corebank/internal/adapter/http/dto"
	"github.com/lumapay/corebank/internal/usecase"
)

// PixHandler handles PIX transfer requests.
type PixHandler struct {
	ledgerUC *usecase.LedgerUseCase
}

// NewPixHandler creates a new PixHandler.
func NewPixHandler(ledgerUC *usecase.LedgerUseCase) *PixHandler {
	return &PixHandler{ledgerUC: ledgerUC}
}

// Transfer debits the caller's wallet and records an outbound PIX
// transfer.
func (h *PixHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.PixTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	result, err := h.ledgerUC.PixPayout(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PixTransferFromResult(result))
}
