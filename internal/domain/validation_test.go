package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected error
	}{
		{"positive amount", decimal.NewFromInt(40), nil},
		{"smallest unit", decimal.RequireFromString("0.01"), nil},
		{"zero", decimal.Zero, ErrInvalidAmount},
		{"negative", decimal.NewFromInt(-10), ErrInvalidAmount},
		{"above ceiling", decimal.RequireFromString("1000000.01"), ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.expected == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestValidatePixKey(t *testing.T) {
	// The key check is deliberately permissive; anything non-empty within
	// the length cap passes.
	valid := []string{
		"user@example.com",
		"+5511999998888",
		"123.456.789-09",
		"a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		"qualquer coisa",
	}
	for _, key := range valid {
		if err := ValidatePixKey(key); err != nil {
			t.Errorf("expected key %q to be accepted, got %v", key, err)
		}
	}

	if err := ValidatePixKey("   "); !errors.Is(err, ErrInvalidPixKey) {
		t.Errorf("expected ErrInvalidPixKey for blank key, got %v", err)
	}

	if err := ValidatePixKey(strings.Repeat("x", MaxPixKeyLength+1)); !errors.Is(err, ErrInvalidPixKey) {
		t.Errorf("expected ErrInvalidPixKey for oversized key, got %v", err)
	}
}

func TestValidateGiftCardProduct(t *testing.T) {
	if err := ValidateGiftCardProduct("Netflix"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, name := range []string{"", "   ", "!!!", strings.Repeat("a", MaxProductLength+1)} {
		if err := ValidateGiftCardProduct(name); !errors.Is(err, ErrInvalidProduct) {
			t.Errorf("expected ErrInvalidProduct for %q, got %v", name, err)
		}
	}
}

func TestValidateUserID(t *testing.T) {
	if err := ValidateUserID("user-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateUserID(" "); !errors.Is(err, ErrMissingUserID) {
		t.Errorf("expected ErrMissingUserID, got %v", err)
	}
}

func TestProposal_ValidStatusTransition(t *testing.T) {
	pending := &Proposal{Status: ProposalPending}
	if !pending.ValidStatusTransition(ProposalApproved) {
		t.Error("pending -> approved should be allowed")
	}
	if !pending.ValidStatusTransition(ProposalRejected) {
		t.Error("pending -> rejected should be allowed")
	}
	if pending.ValidStatusTransition(ProposalPending) {
		t.Error("pending -> pending should be rejected")
	}

	approved := &Proposal{Status: ProposalApproved}
	if approved.ValidStatusTransition(ProposalRejected) {
		t.Error("decided proposals are final")
	}
}
