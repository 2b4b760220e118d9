package model

import "errors"

var (
	// Business rule errors. Messages are the exact wire detail strings.
	ErrAmountExceedsBalance   = errors.New("Withdrawal amount exceeds current balance")
	ErrBelowMinimumWithdrawal = errors.New("Minimum withdrawal amount is ₹500")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAmountExceedsBalance),
		errors.Is(err, ErrBelowMinimumWithdrawal):
		return 400
	default:
		return 500
	}
}
