package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lumapay/corebank/internal/adapter/http/dto"
	"github.com/lumapay/corebank/internal/usecase"
)

// AdminHandler handles back-office operations: manual credits, payout
// reversals and the transactions report.
type AdminHandler struct {
	ledgerUC *usecase.LedgerUseCase
	reportUC *usecase.ReportUseCase
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ledgerUC *usecase.LedgerUseCase, reportUC *usecase.ReportUseCase) *AdminHandler {
	return &AdminHandler{
		ledgerUC: ledgerUC,
		reportUC: reportUC,
	}
}

// Credit adds funds to a user's wallet.
func (h *AdminHandler) Credit(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	result, err := h.ledgerUC.Credit(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AdminCreditResponse{
		Status:        "success",
		TransactionID: result.TransactionID,
		Saldo:         result.NewBalance,
	})
}

// Reverse credits a completed payout back to the wallet.
func (h *AdminHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminReversalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	if req.TransactionID == "" {
		writeError(w, http.StatusBadRequest, "transaction_id é obrigatório")
		return
	}

	result, err := h.ledgerUC.Reverse(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AdminReversalResponse{
		Status:        "success",
		TransactionID: result.TransactionID,
		Saldo:         result.NewBalance,
	})
}

// Report returns the ledger-wide summary plus a page of transactions.
func (h *AdminHandler) Report(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	report, err := h.reportUC.GetReport(r.Context(), usecase.ListTransactionsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportFromUseCase(report))
}
