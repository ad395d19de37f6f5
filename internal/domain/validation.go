package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrMissingUserID     = errors.New("user_id is required")
	ErrInvalidPixKey     = errors.New("invalid pix key")
	ErrInvalidProduct    = errors.New("invalid gift card product")
	ErrMissingProposalID = errors.New("proposta_id is required")
	ErrAmountTooLarge    = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxPixKeyLength  = 140
	MaxProductLength = 64
	MaxDebitAmount   = "1000000" // per-request ceiling, 1M BRL
)

// ValidateUserID validates the user identifier.
func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrMissingUserID
	}
	return nil
}

// ValidateAmount validates a debit/credit amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxDebitAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxDebitAmount)
	}

	return nil
}

// ValidatePixKey validates a PIX recipient key.
//
// The check is intentionally permissive: any non-empty string of sane
// length is accepted, matching the behavior shipped in production. Real
// key-format validation (CPF/CNPJ/email/phone/EVP) is delegated to the
// payment rail.
func ValidatePixKey(key string) error {
	key = strings.TrimSpace(key)

	if key == "" {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidPixKey)
	}

	if len(key) > MaxPixKeyLength {
		return fmt.Errorf("%w: key exceeds %d characters", ErrInvalidPixKey, MaxPixKeyLength)
	}

	return nil
}

// ValidateGiftCardProduct validates a gift card product name.
func ValidateGiftCardProduct(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProduct)
	}

	if len(name) > MaxProductLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidProduct, MaxProductLength)
	}

	if normalizeProductName(name) == "" {
		return fmt.Errorf("%w: name has no usable characters", ErrInvalidProduct)
	}

	return nil
}
