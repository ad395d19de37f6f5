package usecase

import (
	"context"

	"github.com/lumapay/corebank/internal/domain"
)

// WalletUseCase handles read-only wallet access.
type WalletUseCase struct {
	walletRepo   WalletRepository
	giftCardRepo GiftCardRepository
}

// NewWalletUseCase creates a new WalletUseCase.
func NewWalletUseCase(walletRepo WalletRepository, giftCardRepo GiftCardRepository) *WalletUseCase {
	return &WalletUseCase{
		walletRepo:   walletRepo,
		giftCardRepo: giftCardRepo,
	}
}

// GetWallet retrieves the wallet for a user.
func (uc *WalletUseCase) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}

	return uc.walletRepo.GetByUserID(ctx, userID)
}

// ListGiftCardsInput represents input for listing a user's gift cards.
type ListGiftCardsInput struct {
	UserID string
	Limit  int
	Offset int
}

// ListGiftCards lists gift cards issued to a user.
func (uc *WalletUseCase) ListGiftCards(ctx context.Context, input ListGiftCardsInput) ([]*domain.GiftCard, error) {
	if err := domain.ValidateUserID(input.UserID); err != nil {
		return nil, err
	}

	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.giftCardRepo.ListByUser(ctx, input.UserID, input.Limit, input.Offset)
}
