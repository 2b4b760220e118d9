package service

import (
	"context"

	"bookleaf-royalty/internal/domains/withdrawal/model"
)

// ServiceInterface is the withdrawal processor: validated creation against
// the author's balance, plus the per-author history view.
type ServiceInterface interface {
	// Create records a pending withdrawal when the amount fits within the
	// author's current balance. Fails with authormodel.ErrAuthorNotFound,
	// model.ErrAmountExceedsBalance or model.ErrBelowMinimumWithdrawal.
	Create(ctx context.Context, req *model.CreateWithdrawalRequest) (*model.WithdrawalResponse, error)

	// History returns the author's withdrawals, newest first. Fails with
	// authormodel.ErrAuthorNotFound for unknown ids.
	History(ctx context.Context, authorID int64) ([]model.WithdrawalRecord, error)
}
