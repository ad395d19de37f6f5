package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumapay/corebank/internal/domain"
)

// WalletRepository defines data access for wallets.
type WalletRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, tx Transaction, userID string) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx Transaction, userID string, balance decimal.Decimal, updatedAt time.Time) error
}

// TransactionRepository defines data access for ledger transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	GetByReversedID(ctx context.Context, reversedID string) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	Summary(ctx context.Context) (*domain.TransactionSummary, error)
}

// GiftCardRepository defines data access for issued gift cards.
type GiftCardRepository interface {
	Create(ctx context.Context, tx Transaction, card *domain.GiftCard) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.GiftCard, error)
}

// ProposalRepository defines data access for financing proposals.
type ProposalRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Proposal, error)
	List(ctx context.Context, status domain.ProposalStatus, limit, offset int) ([]*domain.Proposal, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProposalStatus, updatedAt time.Time) error
}

// SubaccountRepository defines data access for subaccounts.
type SubaccountRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Subaccount, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient datastore failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
