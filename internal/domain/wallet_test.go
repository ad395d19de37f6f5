package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestWallet_ValidateDebit(t *testing.T) {
	tests := []struct {
		name        string
		balance     decimal.Decimal
		debitAmount decimal.Decimal
		expectError bool
	}{
		{
			name:        "debit less than balance",
			balance:     decimal.NewFromInt(100),
			debitAmount: decimal.NewFromInt(40),
			expectError: false,
		},
		{
			name:        "debit exact balance",
			balance:     decimal.NewFromInt(100),
			debitAmount: decimal.NewFromInt(100),
			expectError: false,
		},
		{
			name:        "debit more than balance",
			balance:     decimal.NewFromInt(100),
			debitAmount: decimal.NewFromInt(150),
			expectError: true,
		},
		{
			name:        "debit from empty wallet",
			balance:     decimal.Zero,
			debitAmount: decimal.NewFromInt(1),
			expectError: true,
		},
		{
			name:        "fractional amounts compare correctly",
			balance:     decimal.RequireFromString("20.00"),
			debitAmount: decimal.RequireFromString("20.01"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Wallet{Balance: tt.balance, Currency: "BRL"}

			err := w.ValidateDebit(tt.debitAmount)

			if tt.expectError && err != ErrInsufficientFunds {
				t.Errorf("expected ErrInsufficientFunds, got %v", err)
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestWallet_ApplyDebitCredit(t *testing.T) {
	w := &Wallet{Balance: decimal.RequireFromString("100.00")}

	debited := w.ApplyDebit(decimal.RequireFromString("40.00"))
	if !debited.Equal(decimal.RequireFromString("60.00")) {
		t.Errorf("expected 60.00 after debit, got %s", debited)
	}

	credited := w.ApplyCredit(decimal.RequireFromString("25.50"))
	if !credited.Equal(decimal.RequireFromString("125.50")) {
		t.Errorf("expected 125.50 after credit, got %s", credited)
	}

	// Apply* must not mutate the wallet itself.
	if !w.Balance.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("wallet balance mutated: %s", w.Balance)
	}
}
