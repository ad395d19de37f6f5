package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumapay/corebank/internal/domain"
)

// ProposalRepository implements usecase.ProposalRepository against the
// propostas_financiamento table.
type ProposalRepository struct {
	pool *pgxpool.Pool
}

// NewProposalRepository creates a new ProposalRepository.
func NewProposalRepository(pool *pgxpool.Pool) *ProposalRepository {
	return &ProposalRepository{pool: pool}
}

const proposalColumns = "id, user_id, veiculo, valor_total, entrada, parcelas, valor_parcela, status, created_at, updated_at"

// GetByID retrieves a proposal by ID.
func (r *ProposalRepository) GetByID(ctx context.Context, id string) (*domain.Proposal, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+proposalColumns+" FROM propostas_financiamento WHERE id = $1",
		id,
	)

	return scanProposal(row)
}

// List retrieves proposals for the back office, optionally filtered by
// status, newest first.
func (r *ProposalRepository) List(ctx context.Context, status domain.ProposalStatus, limit, offset int) ([]*domain.Proposal, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if status == "" {
		rows, err = r.pool.Query(ctx,
			"SELECT "+proposalColumns+" FROM propostas_financiamento ORDER BY created_at DESC LIMIT $1 OFFSET $2",
			limit, offset,
		)
	} else {
		rows, err = r.pool.Query(ctx,
			"SELECT "+proposalColumns+" FROM propostas_financiamento WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
			string(status), limit, offset,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []*domain.Proposal
	for rows.Next() {
		proposal, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}

		proposals = append(proposals, proposal)
	}

	return proposals, rows.Err()
}

// UpdateStatus applies a back-office decision.
func (r *ProposalRepository) UpdateStatus(ctx context.Context, id string, status domain.ProposalStatus, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE propostas_financiamento SET status = $2, updated_at = $3 WHERE id = $1",
		id, string(status), timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrProposalNotFound
	}

	return nil
}

func scanProposal(row pgx.Row) (*domain.Proposal, error) {
	var (
		proposal    domain.Proposal
		status      string
		totalValue  pgtype.Numeric
		downPayment pgtype.Numeric
		installment pgtype.Numeric
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&proposal.ID,
		&proposal.UserID,
		&proposal.Vehicle,
		&totalValue,
		&downPayment,
		&proposal.Installments,
		&installment,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProposalNotFound
		}

		return nil, err
	}

	proposal.Status = domain.ProposalStatus(status)
	proposal.TotalValue = numericToDecimal(totalValue)
	proposal.DownPayment = numericToDecimal(downPayment)
	proposal.Installment = numericToDecimal(installment)
	proposal.CreatedAt = createdAt.Time
	proposal.UpdatedAt = updatedAt.Time

	return &proposal, nil
}
