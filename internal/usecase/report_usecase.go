package usecase

import (
	"context"

	"github.com/lumapay/corebank/internal/domain"
)

// ReportUseCase builds the back-office transactions report.
type ReportUseCase struct {
	txnRepo TransactionRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(txnRepo TransactionRepository) *ReportUseCase {
	return &ReportUseCase{txnRepo: txnRepo}
}

// Report is the admin transactions report.
type Report struct {
	Summary      *domain.TransactionSummary
	Transactions []*domain.Transaction
}

// ListTransactionsInput represents pagination for the report listing.
type ListTransactionsInput struct {
	Limit  int
	Offset int
}

// GetReport returns the ledger-wide summary plus a page of transactions.
func (uc *ReportUseCase) GetReport(ctx context.Context, input ListTransactionsInput) (*Report, error) {
	if input.Limit <= 0 {
		input.Limit = 50
	}

	if input.Limit > 500 {
		input.Limit = 500
	}

	summary, err := uc.txnRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}

	txns, err := uc.txnRepo.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	return &Report{
		Summary:      summary,
		Transactions: txns,
	}, nil
}
