package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/infrastructure/metrics"
)

// LedgerUseCase handles balance mutations: PIX payouts, gift card
// purchases, back-office credits and reversals. Every mutation runs the
// same sequence inside a single database transaction: lock the wallet
// row, check funds, append the transaction record (plus any channel side
// record and the outbox event), write the new balance, commit. A failure
// at any step rolls the whole mutation back.
type LedgerUseCase struct {
	txManager    TransactionManager
	walletRepo   WalletRepository
	txnRepo      TransactionRepository
	giftCardRepo GiftCardRepository
	outboxRepo   OutboxRepository
	idGen        IDGenerator
	retrier      Retrier
	metrics      *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase. metrics may be nil.
func NewLedgerUseCase(
	txManager TransactionManager,
	walletRepo WalletRepository,
	txnRepo TransactionRepository,
	giftCardRepo GiftCardRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	retrier Retrier,
	m *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:    txManager,
		walletRepo:   walletRepo,
		txnRepo:      txnRepo,
		giftCardRepo: giftCardRepo,
		outboxRepo:   outboxRepo,
		idGen:        idGen,
		retrier:      retrier,
		metrics:      m,
	}
}

// PixPayoutInput represents an outbound PIX transfer request.
type PixPayoutInput struct {
	UserID string
	PixKey string
	Amount decimal.Decimal
}

// PixPayoutResult is the outcome of a successful payout.
type PixPayoutResult struct {
	TransactionID string
	NewBalance    decimal.Decimal
	Currency      string
}

// PixPayout debits the wallet and records an outbound PIX transfer.
func (uc *LedgerUseCase) PixPayout(ctx context.Context, input PixPayoutInput) (*PixPayoutResult, error) {
	if err := domain.ValidateUserID(input.UserID); err != nil {
		return nil, err
	}

	if err := domain.ValidatePixKey(input.PixKey); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	txn, wallet, err := uc.debit(ctx, debitParams{
		userID:   input.UserID,
		amount:   input.Amount,
		kind:     domain.KindPayout,
		idPrefix: domain.PrefixPix,
		metadata: map[string]any{"chave_pix": input.PixKey},
		eventFor: func(txn *domain.Transaction) *domain.OutboxEvent {
			return uc.newEvent(txn, domain.EventTypePayoutCompleted, map[string]any{
				"transaction_id": txn.ID,
				"user_id":        txn.UserID,
				"pix_key":        input.PixKey,
				"amount":         txn.Amount.String(),
				"currency":       txn.Currency,
			})
		},
	})
	if err != nil {
		return nil, err
	}

	return &PixPayoutResult{
		TransactionID: txn.ID,
		NewBalance:    wallet.Balance,
		Currency:      wallet.Currency,
	}, nil
}

// GiftCardPurchaseInput represents a gift card purchase request.
type GiftCardPurchaseInput struct {
	UserID      string
	ProductName string
	Amount      decimal.Decimal
}

// GiftCardPurchaseResult is the outcome of a successful purchase.
type GiftCardPurchaseResult struct {
	TransactionID string
	Code          string
	NewBalance    decimal.Decimal
	Currency      string
}

// PurchaseGiftCard debits the wallet, issues a gift card and records the
// purchase transaction.
func (uc *LedgerUseCase) PurchaseGiftCard(ctx context.Context, input GiftCardPurchaseInput) (*GiftCardPurchaseResult, error) {
	if err := domain.ValidateUserID(input.UserID); err != nil {
		return nil, err
	}

	if err := domain.ValidateGiftCardProduct(input.ProductName); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	code := domain.GenerateGiftCardCode(input.ProductName)

	txn, wallet, err := uc.debit(ctx, debitParams{
		userID:   input.UserID,
		amount:   input.Amount,
		kind:     domain.KindGiftCardPurchase,
		idPrefix: domain.PrefixGiftCard,
		metadata: map[string]any{"giftcard_name": input.ProductName, "codigo": code},
		sideEffect: func(ctx context.Context, tx Transaction, txn *domain.Transaction) error {
			return uc.giftCardRepo.Create(ctx, tx, &domain.GiftCard{
				ID:          uc.idGen.Generate(),
				UserID:      input.UserID,
				ProductName: input.ProductName,
				FaceValue:   input.Amount,
				Code:        code,
				Status:      domain.GiftCardActive,
				CreatedAt:   txn.CreatedAt,
			})
		},
		eventFor: func(txn *domain.Transaction) *domain.OutboxEvent {
			return uc.newEvent(txn, domain.EventTypeGiftCardPurchased, map[string]any{
				"transaction_id": txn.ID,
				"user_id":        txn.UserID,
				"product_name":   input.ProductName,
				"code":           code,
				"amount":         txn.Amount.String(),
				"currency":       txn.Currency,
			})
		},
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.GiftCardsIssued.WithLabelValues(input.ProductName).Inc()
	}

	return &GiftCardPurchaseResult{
		TransactionID: txn.ID,
		Code:          code,
		NewBalance:    wallet.Balance,
		Currency:      wallet.Currency,
	}, nil
}

// debitParams drives the shared debit sequence. The PIX and gift card
// channels differ only in id prefix, metadata and side records.
type debitParams struct {
	userID     string
	amount     decimal.Decimal
	kind       domain.TransactionKind
	idPrefix   string
	metadata   map[string]any
	sideEffect func(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	eventFor   func(txn *domain.Transaction) *domain.OutboxEvent
}

func (uc *LedgerUseCase) debit(ctx context.Context, p debitParams) (*domain.Transaction, *domain.Wallet, error) {
	var (
		txn    *domain.Transaction
		wallet *domain.Wallet
	)

	// Deadlocks and serialization failures restart the whole locked
	// sequence; business rejections are permanent.
	err := uc.retrier.Retry(ctx, func() error {
		var err error
		txn, wallet, err = uc.debitOnce(ctx, p)
		return err
	})

	if uc.metrics != nil {
		channel := string(p.kind)
		if err != nil {
			uc.metrics.DebitsProcessed.WithLabelValues(channel, "failure").Inc()
			uc.metrics.LedgerErrors.WithLabelValues(ledgerErrorType(err)).Inc()
		} else {
			uc.metrics.DebitsProcessed.WithLabelValues(channel, "success").Inc()
			amount, _ := p.amount.Float64()
			uc.metrics.DebitAmount.WithLabelValues(channel).Observe(amount)
		}
	}

	if err != nil {
		return nil, nil, err
	}

	return txn, wallet, nil
}

func ledgerErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrWalletNotFound):
		return "wallet_not_found"
	default:
		return "other"
	}
}

func (uc *LedgerUseCase) debitOnce(ctx context.Context, p debitParams) (*domain.Transaction, *domain.Wallet, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the wallet row so the sufficiency check and the balance write
	// see the same state even under concurrent debits.
	wallet, err := uc.walletRepo.GetByUserIDForUpdate(ctx, tx, p.userID)
	if err != nil {
		return nil, nil, err
	}

	if err := wallet.ValidateDebit(p.amount); err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:        p.idPrefix + uc.idGen.Generate(),
		UserID:    p.userID,
		Kind:      p.kind,
		Amount:    p.amount,
		Currency:  wallet.Currency,
		Profit:    decimal.Zero,
		Status:    domain.StatusCompleted,
		Metadata:  p.metadata,
		CreatedAt: now,
	}

	if p.sideEffect != nil {
		if err := p.sideEffect(ctx, tx, txn); err != nil {
			return nil, nil, err
		}
	}

	if err := uc.txnRepo.Create(ctx, tx, txn); err != nil {
		return nil, nil, err
	}

	if p.eventFor != nil {
		if err := uc.outboxRepo.Create(ctx, tx, p.eventFor(txn)); err != nil {
			return nil, nil, err
		}
	}

	newBalance := wallet.ApplyDebit(p.amount)
	if err := uc.walletRepo.UpdateBalance(ctx, tx, p.userID, newBalance, now); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	wallet.Balance = newBalance
	wallet.UpdatedAt = now

	return txn, wallet, nil
}

// CreditInput represents a back-office wallet credit.
type CreditInput struct {
	UserID string
	Amount decimal.Decimal
	Profit decimal.Decimal
	Reason string
}

// CreditResult is the outcome of a successful credit.
type CreditResult struct {
	TransactionID string
	NewBalance    decimal.Decimal
	Currency      string
}

// Credit adds funds to a wallet, recording the credit transaction with
// its profit component for dashboard aggregation.
func (uc *LedgerUseCase) Credit(ctx context.Context, input CreditInput) (*CreditResult, error) {
	if err := domain.ValidateUserID(input.UserID); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if input.Profit.IsNegative() || input.Profit.GreaterThan(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}

	txn, wallet, err := uc.credit(ctx, creditParams{
		userID:     input.UserID,
		amount:     input.Amount,
		profit:     input.Profit,
		kind:       domain.KindCredit,
		idPrefix:   domain.PrefixCredit,
		metadata:   map[string]any{"motivo": input.Reason},
		eventType:  domain.EventTypeWalletCredited,
		reversedID: nil,
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CreditsIssued.Inc()
	}

	return &CreditResult{
		TransactionID: txn.ID,
		NewBalance:    wallet.Balance,
		Currency:      wallet.Currency,
	}, nil
}

// ReverseInput identifies a payout to reverse.
type ReverseInput struct {
	TransactionID string
	Reason        string
}

// Reverse credits a completed payout back to the wallet. Each payout can
// be reversed at most once.
func (uc *LedgerUseCase) Reverse(ctx context.Context, input ReverseInput) (*CreditResult, error) {
	original, err := uc.txnRepo.GetByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if !original.Reversible() {
		return nil, domain.ErrNotReversible
	}

	existing, err := uc.txnRepo.GetByReversedID(ctx, original.ID)
	if err != nil && err != domain.ErrTransactionNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyReversed
	}

	txn, wallet, err := uc.credit(ctx, creditParams{
		userID:     original.UserID,
		amount:     original.Amount,
		profit:     decimal.Zero,
		kind:       domain.KindReversal,
		idPrefix:   domain.PrefixReversal,
		metadata:   map[string]any{"motivo": input.Reason, "transacao_original": original.ID},
		eventType:  domain.EventTypePayoutReversed,
		reversedID: &original.ID,
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.Reversals.Inc()
	}

	return &CreditResult{
		TransactionID: txn.ID,
		NewBalance:    wallet.Balance,
		Currency:      wallet.Currency,
	}, nil
}

type creditParams struct {
	userID     string
	amount     decimal.Decimal
	profit     decimal.Decimal
	kind       domain.TransactionKind
	idPrefix   string
	metadata   map[string]any
	eventType  string
	reversedID *string
}

func (uc *LedgerUseCase) credit(ctx context.Context, p creditParams) (*domain.Transaction, *domain.Wallet, error) {
	var (
		txn    *domain.Transaction
		wallet *domain.Wallet
	)

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		txn, wallet, err = uc.creditOnce(ctx, p)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return txn, wallet, nil
}

func (uc *LedgerUseCase) creditOnce(ctx context.Context, p creditParams) (*domain.Transaction, *domain.Wallet, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	wallet, err := uc.walletRepo.GetByUserIDForUpdate(ctx, tx, p.userID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:                    p.idPrefix + uc.idGen.Generate(),
		UserID:                p.userID,
		Kind:                  p.kind,
		Amount:                p.amount,
		Currency:              wallet.Currency,
		Profit:                p.profit,
		Status:                domain.StatusCompleted,
		Metadata:              p.metadata,
		ReversedTransactionID: p.reversedID,
		CreatedAt:             now,
	}

	if err := uc.txnRepo.Create(ctx, tx, txn); err != nil {
		return nil, nil, err
	}

	if err := uc.outboxRepo.Create(ctx, tx, uc.newEvent(txn, p.eventType, map[string]any{
		"transaction_id": txn.ID,
		"user_id":        txn.UserID,
		"amount":         txn.Amount.String(),
		"currency":       txn.Currency,
	})); err != nil {
		return nil, nil, err
	}

	newBalance := wallet.ApplyCredit(p.amount)
	if err := uc.walletRepo.UpdateBalance(ctx, tx, p.userID, newBalance, now); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	wallet.Balance = newBalance
	wallet.UpdatedAt = now

	return txn, wallet, nil
}

func (uc *LedgerUseCase) newEvent(txn *domain.Transaction, eventType string, payload map[string]any) *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   txn.ID,
		AggregateType: domain.AggregateTypeTransaction,
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     txn.CreatedAt,
	}
}
