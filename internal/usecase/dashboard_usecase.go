package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumapay/corebank/internal/domain"
)

const recentTransactionsLimit = 10

// DashboardUseCase aggregates a user's transaction history for the
// account dashboard.
type DashboardUseCase struct {
	subaccountRepo SubaccountRepository
	txnRepo        TransactionRepository
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(subaccountRepo SubaccountRepository, txnRepo TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{
		subaccountRepo: subaccountRepo,
		txnRepo:        txnRepo,
	}
}

// MonthGroup is the per-calendar-month aggregate (MM/YYYY).
type MonthGroup struct {
	Month  string
	Profit decimal.Decimal
	Count  int
}

// DashboardData is the aggregated dashboard payload.
type DashboardData struct {
	Subaccount  *domain.Subaccount
	Recent      []*domain.Transaction
	ByMonth     []MonthGroup
	TotalCount  int
	TotalAmount decimal.Decimal
	TotalProfit decimal.Decimal
}

// GetDashboard resolves the user's subaccount and computes totals, the
// month grouping and the recent-transactions slice in one pass over the
// full history. A full scan is fine at this product's data scale.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, userID string) (*DashboardData, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}

	subaccount, err := uc.subaccountRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Newest first.
	txns, err := uc.txnRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		Subaccount:  subaccount,
		TotalCount:  len(txns),
		TotalAmount: decimal.Zero,
		TotalProfit: decimal.Zero,
	}

	months := make(map[string]*MonthGroup)
	for _, txn := range txns {
		data.TotalAmount = data.TotalAmount.Add(txn.Amount)
		data.TotalProfit = data.TotalProfit.Add(txn.Profit)

		key := txn.CreatedAt.Format("01/2006")
		group, ok := months[key]
		if !ok {
			group = &MonthGroup{Month: key, Profit: decimal.Zero}
			months[key] = group
		}
		group.Profit = group.Profit.Add(txn.Profit)
		group.Count++
	}

	data.ByMonth = sortMonthGroups(months)

	if len(txns) > recentTransactionsLimit {
		txns = txns[:recentTransactionsLimit]
	}
	data.Recent = txns

	return data, nil
}

// sortMonthGroups orders groups most recent month first.
func sortMonthGroups(months map[string]*MonthGroup) []MonthGroup {
	groups := make([]MonthGroup, 0, len(months))
	for _, g := range months {
		groups = append(groups, *g)
	}

	sort.Slice(groups, func(i, j int) bool {
		ti, _ := time.Parse("01/2006", groups[i].Month)
		tj, _ := time.Parse("01/2006", groups[j].Month)
		return ti.After(tj)
	})

	return groups
}
