package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status of a withdrawal. Only "pending" is ever assigned; no code moves a
// withdrawal out of it.
type Status string

const (
	StatusPending Status = "pending"
)

func (s Status) IsValid() bool {
	return s == StatusPending
}

func (s Status) String() string {
	return string(s)
}

// Withdrawal is an append-only payout request against an author's balance.
type Withdrawal struct {
	ID        int64           `json:"id" db:"id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Status    Status          `json:"status" db:"status"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	AuthorID  int64           `json:"author_id" db:"author_id"`
}
