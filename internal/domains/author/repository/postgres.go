package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bookleaf-royalty/internal/domains/author/model"
)

// postgresRepository implements RepositoryInterface on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `
        SELECT id, name, email, bank, ifsc
        FROM authors
        WHERE id = $1
    `

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.Bank,
		&a.IFSC,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	query := `
        SELECT id, name, email, bank, ifsc
        FROM authors
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Bank, &a.IFSC); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) TotalEarnings(ctx context.Context, authorID int64) (decimal.Decimal, error) {
	return sumEarnings(ctx, r.pool, authorID)
}

func (r *postgresRepository) TotalWithdrawn(ctx context.Context, authorID int64) (decimal.Decimal, error) {
	return sumWithdrawn(ctx, r.pool, authorID)
}

func (r *postgresRepository) BookSummaries(ctx context.Context, authorID int64) ([]model.BookSummary, error) {
	// LEFT JOIN keeps books with no sales at total_sold = 0.
	query := `
        SELECT b.id, b.title, b.royalty_per_sale, COALESCE(SUM(s.quantity), 0) AS total_sold
        FROM books b
        LEFT JOIN sales s ON s.book_id = b.id
        WHERE b.author_id = $1
        GROUP BY b.id, b.title, b.royalty_per_sale
        ORDER BY b.id
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book summaries: %w", err)
	}
	defer rows.Close()

	var summaries []model.BookSummary
	for rows.Next() {
		var b model.BookSummary
		if err := rows.Scan(&b.ID, &b.Title, &b.RoyaltyPerSale, &b.TotalSold); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		summaries = append(summaries, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate book summaries: %w", err)
	}

	return summaries, nil
}

func (r *postgresRepository) SalesHistory(ctx context.Context, authorID int64) ([]model.SaleHistoryRow, error) {
	query := `
        SELECT b.title, s.quantity, s.quantity * b.royalty_per_sale AS royalty_earned, s.sale_date
        FROM sales s
        JOIN books b ON s.book_id = b.id
        WHERE b.author_id = $1
        ORDER BY s.sale_date DESC
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales history: %w", err)
	}
	defer rows.Close()

	var sales []model.SaleHistoryRow
	for rows.Next() {
		var s model.SaleHistoryRow
		if err := rows.Scan(&s.BookTitle, &s.Quantity, &s.RoyaltyEarned, &s.SaleDate); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales: %w", err)
	}

	return sales, nil
}

// queryRower is satisfied by both *pgxpool.Pool and pgx.Tx, so the balance
// sums can run standalone or inside the withdrawal transaction.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func sumEarnings(ctx context.Context, q queryRower, authorID int64) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(s.quantity * b.royalty_per_sale), 0)
        FROM sales s
        JOIN books b ON s.book_id = b.id
        WHERE b.author_id = $1
    `

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, authorID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum earnings: %w", err)
	}
	return total, nil
}

func sumWithdrawn(ctx context.Context, q queryRower, authorID int64) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM withdrawals
        WHERE author_id = $1
    `

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, authorID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum withdrawals: %w", err)
	}
	return total, nil
}

// SumEarningsTx exposes the earnings sum for transaction-scoped callers.
func SumEarningsTx(ctx context.Context, tx pgx.Tx, authorID int64) (decimal.Decimal, error) {
	return sumEarnings(ctx, tx, authorID)
}

// SumWithdrawnTx exposes the withdrawn sum for transaction-scoped callers.
func SumWithdrawnTx(ctx context.Context, tx pgx.Tx, authorID int64) (decimal.Decimal, error) {
	return sumWithdrawn(ctx, tx, authorID)
}
