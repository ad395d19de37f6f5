package dto

import (
	"github.com/shopspring/decimal"

	"github.com/lumapay/corebank/internal/usecase"
)

// PixTransferRequest is the POST /api/pix/transferir body.
type PixTransferRequest struct {
	UserID   string          `json:"user_id"`
	ChavePix string          `json:"chave_pix"`
	Valor    decimal.Decimal `json:"valor"`
}

// ToUseCaseInput converts to use case input.
func (r *PixTransferRequest) ToUseCaseInput() usecase.PixPayoutInput {
	return usecase.PixPayoutInput{
		UserID: r.UserID,
		PixKey: r.ChavePix,
		Amount: r.Valor,
	}
}

// GiftCardPurchaseRequest is the POST /api/giftcards/comprar body.
type GiftCardPurchaseRequest struct {
	UserID       string          `json:"user_id"`
	GiftCardName string          `json:"giftcard_name"`
	Valor        decimal.Decimal `json:"valor"`
}

// ToUseCaseInput converts to use case input.
func (r *GiftCardPurchaseRequest) ToUseCaseInput() usecase.GiftCardPurchaseInput {
	return usecase.GiftCardPurchaseInput{
		UserID:      r.UserID,
		ProductName: r.GiftCardName,
		Amount:      r.Valor,
	}
}

// ProposalDetailRequest is the POST /api/propostas/detalhe body.
type ProposalDetailRequest struct {
	PropostaID string `json:"proposta_id"`
}

// AdminCreditRequest is the POST /api/admin/credito body.
type AdminCreditRequest struct {
	UserID string          `json:"user_id"`
	Valor  decimal.Decimal `json:"valor"`
	Lucro  decimal.Decimal `json:"lucro"`
	Motivo string          `json:"motivo"`
}

// ToUseCaseInput converts to use case input.
func (r *AdminCreditRequest) ToUseCaseInput() usecase.CreditInput {
	return usecase.CreditInput{
		UserID: r.UserID,
		Amount: r.Valor,
		Profit: r.Lucro,
		Reason: r.Motivo,
	}
}

// AdminReversalRequest is the POST /api/admin/estorno body.
type AdminReversalRequest struct {
	TransactionID string `json:"transaction_id"`
	Motivo        string `json:"motivo"`
}

// ToUseCaseInput converts to use case input.
func (r *AdminReversalRequest) ToUseCaseInput() usecase.ReverseInput {
	return usecase.ReverseInput{
		TransactionID: r.TransactionID,
		Reason:        r.Motivo,
	}
}

// ProposalDecisionRequest is the POST /api/admin/propostas/decisao body.
type ProposalDecisionRequest struct {
	PropostaID string `json:"proposta_id"`
	Status     string `json:"status"`
}
