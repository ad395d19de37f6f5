package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/usecase"
)

// GiftCardRepository implements usecase.GiftCardRepository against the
// giftcards table.
type GiftCardRepository struct {
	pool *pgxpool.Pool
}

// NewGiftCardRepository creates a new GiftCardRepository.
func NewGiftCardRepository(pool *pgxpool.Pool) *GiftCardRepository {
	return &GiftCardRepository{pool: pool}
}

// Create inserts an issued gift card within a database transaction.
func (r *GiftCardRepository) Create(ctx context.Context, tx usecase.Transaction, card *domain.GiftCard) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO giftcards (id, user_id, product_name, face_value, code, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		card.ID,
		card.UserID,
		card.ProductName,
		decimalToNumeric(card.FaceValue),
		card.Code,
		string(card.Status),
		timeToPgTimestamptz(card.CreatedAt),
	)

	return err
}

// ListByUser retrieves gift cards issued to a user, newest first.
func (r *GiftCardRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.GiftCard, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, product_name, face_value, code, status, created_at
		 FROM giftcards WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*domain.GiftCard
	for rows.Next() {
		card, err := scanGiftCard(rows)
		if err != nil {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, rows.Err()
}

func scanGiftCard(row pgx.Row) (*domain.GiftCard, error) {
	var (
		card      domain.GiftCard
		status    string
		faceValue pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&card.ID, &card.UserID, &card.ProductName, &faceValue, &card.Code, &status, &createdAt)
	if err != nil {
		return nil, err
	}

	card.Status = domain.GiftCardStatus(status)
	card.FaceValue = numericToDecimal(faceValue)
	card.CreatedAt = createdAt.Time

	return &card, nil
}
