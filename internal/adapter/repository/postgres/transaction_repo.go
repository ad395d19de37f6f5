package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository against
// the binance_transactions table. Records are append-only; there is no
// update path.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = "id, user_id, kind, amount, currency, profit, status, metadata, reversed_transaction_id, created_at"

// Create inserts a transaction record within a database transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	var metadata []byte
	if txn.Metadata != nil {
		var err error

		metadata, err = json.Marshal(txn.Metadata)
		if err != nil {
			return err
		}
	}

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO binance_transactions (`+transactionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		txn.ID,
		txn.UserID,
		string(txn.Kind),
		decimalToNumeric(txn.Amount),
		txn.Currency,
		decimalToNumeric(txn.Profit),
		string(txn.Status),
		metadata,
		txn.ReversedTransactionID,
		timeToPgTimestamptz(txn.CreatedAt),
	)

	return err
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+transactionColumns+" FROM binance_transactions WHERE id = $1",
		id,
	)

	return scanTransaction(row)
}

// GetByReversedID retrieves the reversal pointing at a transaction.
func (r *TransactionRepository) GetByReversedID(ctx context.Context, reversedID string) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+transactionColumns+" FROM binance_transactions WHERE reversed_transaction_id = $1",
		reversedID,
	)

	return scanTransaction(row)
}

// ListByUser retrieves all transactions for a user, newest first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+transactionColumns+" FROM binance_transactions WHERE user_id = $1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// List retrieves a page of transactions across all users, newest first.
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+transactionColumns+" FROM binance_transactions ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// Summary computes the ledger-wide count, volume and profit totals.
func (r *TransactionRepository) Summary(ctx context.Context) (*domain.TransactionSummary, error) {
	var (
		count  int64
		amount pgtype.Numeric
		profit pgtype.Numeric
	)

	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*), COALESCE(SUM(amount), 0), COALESCE(SUM(profit), 0) FROM binance_transactions",
	).Scan(&count, &amount, &profit)
	if err != nil {
		return nil, err
	}

	return &domain.TransactionSummary{
		Count:       count,
		TotalAmount: numericToDecimal(amount),
		TotalProfit: numericToDecimal(profit),
	}, nil
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn       domain.Transaction
		kind      string
		status    string
		amount    pgtype.Numeric
		profit    pgtype.Numeric
		metadata  []byte
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&txn.ID,
		&txn.UserID,
		&kind,
		&amount,
		&txn.Currency,
		&profit,
		&status,
		&metadata,
		&txn.ReversedTransactionID,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	txn.Kind = domain.TransactionKind(kind)
	txn.Status = domain.TransactionStatus(status)
	txn.Amount = numericToDecimal(amount)
	txn.Profit = numericToDecimal(profit)
	txn.CreatedAt = createdAt.Time

	if metadata != nil {
		_ = json.Unmarshal(metadata, &txn.Metadata)
	}

	return &txn, nil
}
