package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsMinimumAmount(t *testing.T) {
	req := CreateWithdrawalRequest{AuthorID: 1, Amount: 500}
	assert.NoError(t, req.Validate())
}

func TestValidateRejectsBelowMinimum(t *testing.T) {
	req := CreateWithdrawalRequest{AuthorID: 1, Amount: 499}
	err := req.Validate()
	assert.ErrorIs(t, err, ErrBelowMinimumWithdrawal)
	assert.Equal(t, "Minimum withdrawal amount is ₹500", err.Error())
}

func TestValidateRejectsNonPositiveFields(t *testing.T) {
	cases := []struct {
		name string
		req  CreateWithdrawalRequest
	}{
		{"zero author", CreateWithdrawalRequest{AuthorID: 0, Amount: 500}},
		{"negative author", CreateWithdrawalRequest{AuthorID: -3, Amount: 500}},
		{"zero amount", CreateWithdrawalRequest{AuthorID: 1, Amount: 0}},
		{"negative amount", CreateWithdrawalRequest{AuthorID: 1, Amount: -500}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.req.Validate())
		})
	}
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, ToHTTPStatus(ErrAmountExceedsBalance))
	assert.Equal(t, 400, ToHTTPStatus(ErrBelowMinimumWithdrawal))
	assert.Equal(t, 500, ToHTTPStatus(assert.AnError))
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.False(t, Status("approved").IsValid())
	assert.Equal(t, "pending", StatusPending.String())
}
