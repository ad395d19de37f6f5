package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lumapay/corebank/internal/adapter/http/dto"
	"github.com/lumapay/corebank/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the wire error body: {"status":"error","message":...}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Business
// rejections are client errors; lookup misses are 404; everything else
// is a persistence failure.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrProposalNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrSubaccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrWalletNotFound),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrMissingUserID),
		errors.Is(err, domain.ErrMissingProposalID),
		errors.Is(err, domain.ErrInvalidPixKey),
		errors.Is(err, domain.ErrInvalidProduct),
		errors.Is(err, domain.ErrAlreadyReversed),
		errors.Is(err, domain.ErrNotReversible),
		errors.Is(err, domain.ErrInvalidProposalDecision):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
