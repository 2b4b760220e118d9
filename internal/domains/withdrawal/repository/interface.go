package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"bookleaf-royalty/internal/domains/withdrawal/model"
)

// RepositoryInterface defines withdrawal data access.
type RepositoryInterface interface {
	// CreatePending checks the author's balance and inserts a pending
	// withdrawal in one serializable transaction, so concurrent requests
	// cannot both withdraw against the same balance. Returns the created
	// record and the remaining balance. Fails with
	// authormodel.ErrAuthorNotFound or model.ErrAmountExceedsBalance.
	CreatePending(ctx context.Context, authorID int64, amount decimal.Decimal) (*model.Withdrawal, decimal.Decimal, error)

	// ListByAuthor returns the author's withdrawals, newest first.
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Withdrawal, error)

	// AuthorExists reports whether the author id is known.
	AuthorExists(ctx context.Context, authorID int64) (bool, error)
}
