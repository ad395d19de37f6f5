package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds the available balance for a single user. Wallets are
// provisioned externally; this service only reads and mutates them.
type Wallet struct {
	UserID    string
	Balance   decimal.Decimal
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDebit checks if the wallet covers a debit of amount.
func (w *Wallet) ValidateDebit(amount decimal.Decimal) error {
	if amount.GreaterThan(w.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the balance after a debit.
func (w *Wallet) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return w.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit.
func (w *Wallet) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return w.Balance.Add(amount)
}
