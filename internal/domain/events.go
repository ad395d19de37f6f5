package domain

import "time"

// Event types
const (
	EventTypePayoutCompleted   = "transaction.payout_completed"
	EventTypeGiftCardPurchased = "transaction.giftcard_purchased"
	EventTypeWalletCredited    = "transaction.wallet_credited"
	EventTypePayoutReversed    = "transaction.payout_reversed"
)

// Aggregate types
const (
	AggregateTypeTransaction = "transaction"
	AggregateTypeWallet      = "wallet"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// PayoutCompletedEvent payload
type PayoutCompletedEvent struct {
	TransactionID string `json:"transaction_id"`
	UserID        string `json:"user_id"`
	PixKey        string `json:"pix_key"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

// GiftCardPurchasedEvent payload
type GiftCardPurchasedEvent struct {
	TransactionID string `json:"transaction_id"`
	UserID        string `json:"user_id"`
	ProductName   string `json:"product_name"`
	Code          string `json:"code"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}
