package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// MinWithdrawalAmount is the smallest amount an author may withdraw.
const MinWithdrawalAmount = 500

// CreateWithdrawalRequest - POST /withdrawals
// Both fields are positive integers; unknown fields are rejected at decode.
type CreateWithdrawalRequest struct {
	AuthorID int64 `json:"author_id"`
	Amount   int64 `json:"amount"`
}

func (r CreateWithdrawalRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			validation.Min(int64(1)).Error("author_id must be a positive integer"),
		),
		validation.Field(&r.Amount,
			validation.Required.Error("amount is required"),
			validation.Min(int64(1)).Error("amount must be a positive integer"),
		),
	); err != nil {
		return err
	}

	if r.Amount < MinWithdrawalAmount {
		return ErrBelowMinimumWithdrawal
	}

	return nil
}

// WithdrawalResponse - 201 body for POST /withdrawals. new_balance is
// computed from the balance read in the same transaction, not re-queried.
type WithdrawalResponse struct {
	ID         int64           `json:"id"`
	AuthorID   int64           `json:"author_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     Status          `json:"status"`
	NewBalance decimal.Decimal `json:"new_balance"`
	CreatedAt  time.Time       `json:"created_at"`
}

// WithdrawalRecord - one row of GET /authors/:author_id/withdrawals.
type WithdrawalRecord struct {
	ID        int64           `json:"id"`
	AuthorID  int64           `json:"author_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
