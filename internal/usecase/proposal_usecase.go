package usecase

import (
	"context"
	"time"

	"github.com/lumapay/corebank/internal/domain"
)

// ProposalUseCase handles vehicle financing proposals.
type ProposalUseCase struct {
	proposalRepo ProposalRepository
}

// NewProposalUseCase creates a new ProposalUseCase.
func NewProposalUseCase(proposalRepo ProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{proposalRepo: proposalRepo}
}

// GetProposal retrieves a proposal by ID.
func (uc *ProposalUseCase) GetProposal(ctx context.Context, id string) (*domain.Proposal, error) {
	if id == "" {
		return nil, domain.ErrMissingProposalID
	}

	return uc.proposalRepo.GetByID(ctx, id)
}

// ListProposalsInput represents input for the back-office listing.
type ListProposalsInput struct {
	Status domain.ProposalStatus
	Limit  int
	Offset int
}

// ListProposals lists proposals for the back office, optionally filtered
// by status.
func (uc *ProposalUseCase) ListProposals(ctx context.Context, input ListProposalsInput) ([]*domain.Proposal, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.proposalRepo.List(ctx, input.Status, input.Limit, input.Offset)
}

// UpdateProposalStatus applies a back-office decision to a pending
// proposal.
func (uc *ProposalUseCase) UpdateProposalStatus(ctx context.Context, id string, status domain.ProposalStatus) (*domain.Proposal, error) {
	proposal, err := uc.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !proposal.ValidStatusTransition(status) {
		return nil, domain.ErrInvalidProposalDecision
	}

	now := time.Now().UTC()
	if err := uc.proposalRepo.UpdateStatus(ctx, id, status, now); err != nil {
		return nil, err
	}

	proposal.Status = status
	proposal.UpdatedAt = now

	return proposal, nil
}
