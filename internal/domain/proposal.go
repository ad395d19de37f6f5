package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus is the review state of a financing proposal.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "em_analise"
	ProposalApproved ProposalStatus = "aprovada"
	ProposalRejected ProposalStatus = "recusada"
)

// Proposal is a vehicle financing proposal reviewed by the back office.
type Proposal struct {
	ID           string
	UserID       string
	Vehicle      string
	Status       ProposalStatus
	Installments int
	TotalValue   decimal.Decimal
	DownPayment  decimal.Decimal
	Installment  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidStatusTransition checks a back-office status update. Pending
// proposals can be approved or rejected; decided proposals are final.
func (p *Proposal) ValidStatusTransition(next ProposalStatus) bool {
	if p.Status != ProposalPending {
		return false
	}
	return next == ProposalApproved || next == ProposalRejected
}
