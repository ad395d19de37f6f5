package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind enumerates the supported transaction channels.
type TransactionKind string

const (
	KindPayout           TransactionKind = "payout"
	KindGiftCardPurchase TransactionKind = "giftcard_purchase"
	KindCredit           TransactionKind = "credit"
	KindReversal         TransactionKind = "reversal"
)

// TransactionStatus is the lifecycle state of a transaction. Records are
// written as completed; there is no pending state in this product.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
)

// Transaction id prefixes per channel.
const (
	PrefixPix      = "PIX-"
	PrefixGiftCard = "GC-"
	PrefixCredit   = "CR-"
	PrefixReversal = "RV-"
)

// Transaction is an immutable, append-only ledger record.
type Transaction struct {
	CreatedAt             time.Time
	Metadata              map[string]any
	ID                    string
	UserID                string
	Kind                  TransactionKind
	Currency              string
	Status                TransactionStatus
	ReversedTransactionID *string
	Amount                decimal.Decimal
	Profit                decimal.Decimal
}

// TransactionSummary is the back-office aggregate over all transactions.
type TransactionSummary struct {
	Count       int64
	TotalAmount decimal.Decimal
	TotalProfit decimal.Decimal
}

// Reversible reports whether the transaction can be reversed.
// Only outbound payouts are reversible; a reversal of a reversal is not.
func (t *Transaction) Reversible() bool {
	return t.Kind == KindPayout
}
