package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/usecase"
)

// MockWalletRepository is a mock implementation of WalletRepository.
type MockWalletRepository struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet

	GetByUserIDFunc          func(ctx context.Context, userID string) (*domain.Wallet, error)
	GetByUserIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, userID string) (*domain.Wallet, error)
	UpdateBalanceFunc        func(ctx context.Context, tx usecase.Transaction, userID string, balance decimal.Decimal, updatedAt time.Time) error
}

func NewMockWalletRepository() *MockWalletRepository {
	return &MockWalletRepository{
		wallets: make(map[string]*domain.Wallet),
	}
}

// Seed stores a wallet directly in the mock.
func (m *MockWalletRepository) Seed(wallet *domain.Wallet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[wallet.UserID] = wallet
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.wallets[userID]; ok {
		copied := *w
		return &copied, nil
	}
	return nil, domain.ErrWalletNotFound
}

func (m *MockWalletRepository) GetByUserIDForUpdate(ctx context.Context, tx usecase.Transaction, userID string) (*domain.Wallet, error) {
	if m.GetByUserIDForUpdateFunc != nil {
		return m.GetByUserIDForUpdateFunc(ctx, tx, userID)
	}
	return m.GetByUserID(ctx, userID)
}

func (m *MockWalletRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, userID string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, userID, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.wallets[userID]; ok {
		w.Balance = balance
		w.UpdatedAt = updatedAt
		return nil
	}
	return domain.ErrWalletNotFound
}

// Balance returns the stored balance for assertions.
func (m *MockWalletRepository) Balance(userID string) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.wallets[userID]; ok {
		return w.Balance
	}
	return decimal.Zero
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Transaction, error)
	GetByReversedIDFunc func(ctx context.Context, reversedID string) (*domain.Transaction, error)
	ListByUserFunc      func(ctx context.Context, userID string) ([]*domain.Transaction, error)
	ListFunc            func(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	SummaryFunc         func(ctx context.Context) (*domain.TransactionSummary, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, txn)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, txn := range m.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) GetByReversedID(ctx context.Context, reversedID string) (*domain.Transaction, error) {
	if m.GetByReversedIDFunc != nil {
		return m.GetByReversedIDFunc(ctx, reversedID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, txn := range m.transactions {
		if txn.ReversedTransactionID != nil && *txn.ReversedTransactionID == reversedID {
			return txn, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Transaction
	for i := len(m.transactions) - 1; i >= 0; i-- {
		if m.transactions[i].UserID == userID {
			result = append(result, m.transactions[i])
		}
	}
	return result, nil
}

func (m *MockTransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if offset >= len(m.transactions) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.transactions) {
		end = len(m.transactions)
	}
	return m.transactions[offset:end], nil
}

func (m *MockTransactionRepository) Summary(ctx context.Context) (*domain.TransactionSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	summary := &domain.TransactionSummary{
		TotalAmount: decimal.Zero,
		TotalProfit: decimal.Zero,
	}
	for _, txn := range m.transactions {
		summary.Count++
		summary.TotalAmount = summary.TotalAmount.Add(txn.Amount)
		summary.TotalProfit = summary.TotalProfit.Add(txn.Profit)
	}
	return summary, nil
}

// Count returns the number of stored transactions.
func (m *MockTransactionRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transactions)
}

// All returns all stored transactions.
func (m *MockTransactionRepository) All() []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Transaction(nil), m.transactions...)
}

// MockGiftCardRepository is a mock implementation of GiftCardRepository.
type MockGiftCardRepository struct {
	mu    sync.RWMutex
	cards []*domain.GiftCard

	CreateFunc     func(ctx context.Context, tx usecase.Transaction, card *domain.GiftCard) error
	ListByUserFunc func(ctx context.Context, userID string, limit, offset int) ([]*domain.GiftCard, error)
}

func NewMockGiftCardRepository() *MockGiftCardRepository {
	return &MockGiftCardRepository{}
}

func (m *MockGiftCardRepository) Create(ctx context.Context, tx usecase.Transaction, card *domain.GiftCard) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, card)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards = append(m.cards, card)
	return nil
}

func (m *MockGiftCardRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.GiftCard, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.GiftCard
	for _, card := range m.cards {
		if card.UserID == userID {
			result = append(result, card)
		}
	}
	return result, nil
}

// Cards returns all stored gift cards.
func (m *MockGiftCardRepository) Cards() []*domain.GiftCard {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.GiftCard(nil), m.cards...)
}

// MockProposalRepository is a mock implementation of ProposalRepository.
type MockProposalRepository struct {
	mu        sync.RWMutex
	proposals map[string]*domain.Proposal

	GetByIDFunc      func(ctx context.Context, id string) (*domain.Proposal, error)
	ListFunc         func(ctx context.Context, status domain.ProposalStatus, limit, offset int) ([]*domain.Proposal, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.ProposalStatus, updatedAt time.Time) error
}

func NewMockProposalRepository() *MockProposalRepository {
	return &MockProposalRepository{
		proposals: make(map[string]*domain.Proposal),
	}
}

// Seed stores a proposal directly in the mock.
func (m *MockProposalRepository) Seed(p *domain.Proposal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.proposals[p.ID] = p
}

func (m *MockProposalRepository) GetByID(ctx context.Context, id string) (*domain.Proposal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.proposals[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProposalNotFound
}

func (m *MockProposalRepository) List(ctx context.Context, status domain.ProposalStatus, limit, offset int) ([]*domain.Proposal, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, status, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Proposal
	for _, p := range m.proposals {
		if status == "" || p.Status == status {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *MockProposalRepository) UpdateStatus(ctx context.Context, id string, status domain.ProposalStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.proposals[id]; ok {
		p.Status = status
		p.UpdatedAt = updatedAt
		return nil
	}
	return domain.ErrProposalNotFound
}

// MockSubaccountRepository is a mock implementation of SubaccountRepository.
type MockSubaccountRepository struct {
	mu          sync.RWMutex
	subaccounts map[string]*domain.Subaccount

	GetByUserIDFunc func(ctx context.Context, userID string) (*domain.Subaccount, error)
}

func NewMockSubaccountRepository() *MockSubaccountRepository {
	return &MockSubaccountRepository{
		subaccounts: make(map[string]*domain.Subaccount),
	}
}

// Seed stores a subaccount directly in the mock.
func (m *MockSubaccountRepository) Seed(s *domain.Subaccount) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subaccounts[s.UserID] = s
}

func (m *MockSubaccountRepository) GetByUserID(ctx context.Context, userID string) (*domain.Subaccount, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.subaccounts[userID]; ok {
		return s, nil
	}
	return nil, domain.ErrSubaccountNotFound
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc  func(ctx context.Context, id string, publishedAt time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.OutboxEvent
	for _, ev := range m.events {
		if !ev.Published {
			result = append(result, ev)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ev := range m.events {
		if ev.ID == id {
			ev.Published = true
			ev.PublishedAt = &publishedAt
			return nil
		}
	}
	return nil
}

// Events returns all stored events.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.OutboxEvent(nil), m.events...)
}

// MockTransaction is a mock database transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	mu   sync.Mutex
	last *MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = &MockTransaction{}
	return m.last, nil
}

// Last returns the most recently begun transaction.
func (m *MockTransactionManager) Last() *MockTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// MockRetrier is a pass-through Retrier.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%03d", m.counter)
}
