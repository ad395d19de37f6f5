package domain

import "errors"

var (
	// Wallet errors
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyReversed     = errors.New("transaction already reversed")
	ErrNotReversible       = errors.New("transaction cannot be reversed")

	// Proposal errors
	ErrProposalNotFound        = errors.New("proposal not found")
	ErrInvalidProposalDecision = errors.New("proposal cannot transition to requested status")

	// Subaccount errors
	ErrSubaccountNotFound = errors.New("subaccount not found")

	// Auth errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
