package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumapay/corebank/internal/domain"
)

// SubaccountRepository implements usecase.SubaccountRepository against
// the subcontas table.
type SubaccountRepository struct {
	pool *pgxpool.Pool
}

// NewSubaccountRepository creates a new SubaccountRepository.
func NewSubaccountRepository(pool *pgxpool.Pool) *SubaccountRepository {
	return &SubaccountRepository{pool: pool}
}

// GetByUserID retrieves the subaccount for a user.
func (r *SubaccountRepository) GetByUserID(ctx context.Context, userID string) (*domain.Subaccount, error) {
	var (
		subaccount domain.Subaccount
		createdAt  pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx,
		"SELECT id, user_id, nome, created_at FROM subcontas WHERE user_id = $1",
		userID,
	).Scan(&subaccount.ID, &subaccount.UserID, &subaccount.Name, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubaccountNotFound
		}

		return nil, err
	}

	subaccount.CreatedAt = createdAt.Time

	return &subaccount, nil
}
