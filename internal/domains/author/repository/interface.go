package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"bookleaf-royalty/internal/domains/author/model"
)

// RepositoryInterface defines author data access. Every aggregate is computed
// from source rows on each call; nothing is cached or denormalized.
type RepositoryInterface interface {
	// GetByID returns the author or model.ErrAuthorNotFound.
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// List returns all authors.
	List(ctx context.Context) ([]model.Author, error)

	// TotalEarnings sums quantity * royalty_per_sale across the author's
	// books. Zero when the author has no sales.
	TotalEarnings(ctx context.Context, authorID int64) (decimal.Decimal, error)

	// TotalWithdrawn sums the author's withdrawal amounts, any status.
	TotalWithdrawn(ctx context.Context, authorID int64) (decimal.Decimal, error)

	// BookSummaries returns the author's books with summed sale quantities.
	BookSummaries(ctx context.Context, authorID int64) ([]model.BookSummary, error)

	// SalesHistory returns the author's sale rows, newest sale_date first.
	SalesHistory(ctx context.Context, authorID int64) ([]model.SaleHistoryRow, error)
}
