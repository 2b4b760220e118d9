package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	authormodel "bookleaf-royalty/internal/domains/author/model"
	authorrepo "bookleaf-royalty/internal/domains/author/repository"
	"bookleaf-royalty/internal/domains/withdrawal/model"
	"bookleaf-royalty/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

type createResult struct {
	withdrawal *model.Withdrawal
	newBalance decimal.Decimal
}

// CreatePending runs the read-check-insert sequence inside one serializable
// transaction: resolve the author, compute the balance from source rows,
// reject amounts above it, insert the pending withdrawal.
func (r *postgresRepository) CreatePending(ctx context.Context, authorID int64, amount decimal.Decimal) (*model.Withdrawal, decimal.Decimal, error) {
	result, err := database.WithTransactionResult(ctx, r.pool, database.Serializable(), func(tx pgx.Tx) (createResult, error) {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`, authorID).Scan(&exists)
		if err != nil {
			return createResult{}, fmt.Errorf("failed to check author: %w", err)
		}
		if !exists {
			return createResult{}, authormodel.ErrAuthorNotFound
		}

		totalEarnings, err := authorrepo.SumEarningsTx(ctx, tx, authorID)
		if err != nil {
			return createResult{}, err
		}

		totalWithdrawn, err := authorrepo.SumWithdrawnTx(ctx, tx, authorID)
		if err != nil {
			return createResult{}, err
		}

		currentBalance := totalEarnings.Sub(totalWithdrawn)
		if amount.GreaterThan(currentBalance) {
			return createResult{}, model.ErrAmountExceedsBalance
		}

		query := `
            INSERT INTO withdrawals (amount, status, author_id)
            VALUES ($1, $2, $3)
            RETURNING id, amount, status, created_at, author_id
        `

		var w model.Withdrawal
		err = tx.QueryRow(ctx, query, amount, model.StatusPending, authorID).Scan(
			&w.ID,
			&w.Amount,
			&w.Status,
			&w.CreatedAt,
			&w.AuthorID,
		)
		if err != nil {
			return createResult{}, fmt.Errorf("failed to create withdrawal: %w", err)
		}

		return createResult{
			withdrawal: &w,
			newBalance: currentBalance.Sub(amount),
		}, nil
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	return result.withdrawal, result.newBalance, nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID int64) ([]model.Withdrawal, error) {
	query := `
        SELECT id, amount, status, created_at, author_id
        FROM withdrawals
        WHERE author_id = $1
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals: %w", err)
	}
	defer rows.Close()

	var withdrawals []model.Withdrawal
	for rows.Next() {
		var w model.Withdrawal
		if err := rows.Scan(&w.ID, &w.Amount, &w.Status, &w.CreatedAt, &w.AuthorID); err != nil {
			return nil, fmt.Errorf("failed to scan withdrawal: %w", err)
		}
		withdrawals = append(withdrawals, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate withdrawals: %w", err)
	}

	return withdrawals, nil
}

func (r *postgresRepository) AuthorExists(ctx context.Context, authorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author: %w", err)
	}
	return exists, nil
}
