package service

import (
	"context"

	"bookleaf-royalty/internal/domains/author/model"
)

// ServiceInterface is the royalty read side: balance computation plus the
// per-author report views.
type ServiceInterface interface {
	// Balance computes total earnings, total withdrawn and current balance
	// for one author, at full precision.
	Balance(ctx context.Context, authorID int64) (model.Balance, error)

	// ListAuthors returns every author with earnings and balance, rounded
	// for the response boundary.
	ListAuthors(ctx context.Context) ([]model.AuthorBalance, error)

	// GetAuthorDetail returns the single-author view with per-book
	// breakdowns. Fails with model.ErrAuthorNotFound for unknown ids.
	GetAuthorDetail(ctx context.Context, authorID int64) (*model.AuthorDetailResponse, error)

	// GetSalesHistory returns the author's sales, most recent first.
	// Fails with model.ErrAuthorNotFound for unknown ids.
	GetSalesHistory(ctx context.Context, authorID int64) ([]model.SaleHistoryRow, error)
}
