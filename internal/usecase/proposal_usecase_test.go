package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/usecase"
	"github.com/lumapay/corebank/internal/usecase/mocks"
)

func seedProposal(repo *mocks.MockProposalRepository, id string, status domain.ProposalStatus) {
	repo.Seed(&domain.Proposal{
		ID:           id,
		UserID:       "user-1",
		Vehicle:      "Fiat Argo 1.0",
		TotalValue:   decimal.NewFromInt(78000),
		DownPayment:  decimal.NewFromInt(15000),
		Installments: 48,
		Installment:  decimal.RequireFromString("1620.50"),
		Status:       status,
	})
}

func TestProposalUseCase_GetProposal(t *testing.T) {
	repo := mocks.NewMockProposalRepository()
	uc := usecase.NewProposalUseCase(repo)

	seedProposal(repo, "prop-1", domain.ProposalPending)

	proposal, err := uc.GetProposal(context.Background(), "prop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proposal.Vehicle != "Fiat Argo 1.0" {
		t.Errorf("unexpected proposal: %+v", proposal)
	}

	if _, err := uc.GetProposal(context.Background(), ""); !errors.Is(err, domain.ErrMissingProposalID) {
		t.Errorf("expected ErrMissingProposalID, got %v", err)
	}

	if _, err := uc.GetProposal(context.Background(), "missing"); !errors.Is(err, domain.ErrProposalNotFound) {
		t.Errorf("expected ErrProposalNotFound, got %v", err)
	}
}

func TestProposalUseCase_UpdateProposalStatus(t *testing.T) {
	repo := mocks.NewMockProposalRepository()
	uc := usecase.NewProposalUseCase(repo)

	seedProposal(repo, "prop-1", domain.ProposalPending)

	updated, err := uc.UpdateProposalStatus(context.Background(), "prop-1", domain.ProposalApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.ProposalApproved {
		t.Errorf("expected approved, got %s", updated.Status)
	}

	// Decided proposals are final.
	_, err = uc.UpdateProposalStatus(context.Background(), "prop-1", domain.ProposalRejected)
	if !errors.Is(err, domain.ErrInvalidProposalDecision) {
		t.Fatalf("expected ErrInvalidProposalDecision, got %v", err)
	}
}

func TestReportUseCase_GetReport(t *testing.T) {
	txnRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewReportUseCase(txnRepo)

	for i := 0; i < 3; i++ {
		txnRepo.Create(context.Background(), nil, &domain.Transaction{
			ID:     "PIX-" + string(rune('a'+i)),
			UserID: "user-1",
			Amount: decimal.NewFromInt(50),
			Profit: decimal.NewFromInt(5),
		})
	}

	report, err := uc.GetReport(context.Background(), usecase.ListTransactionsInput{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Summary.Count != 3 {
		t.Errorf("expected summary count 3, got %d", report.Summary.Count)
	}
	if !report.Summary.TotalAmount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected total 150, got %s", report.Summary.TotalAmount)
	}
	if !report.Summary.TotalProfit.Equal(decimal.NewFromInt(15)) {
		t.Errorf("expected profit 15, got %s", report.Summary.TotalProfit)
	}
	if len(report.Transactions) != 2 {
		t.Errorf("expected page of 2, got %d", len(report.Transactions))
	}
}
