package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	authormodel "bookleaf-royalty/internal/domains/author/model"
	"bookleaf-royalty/internal/domains/withdrawal/model"
	"bookleaf-royalty/internal/domains/withdrawal/repository"
)

type withdrawalService struct {
	repo repository.RepositoryInterface
}

func NewWithdrawalService(repo repository.RepositoryInterface) ServiceInterface {
	return &withdrawalService{repo: repo}
}

func (s *withdrawalService) Create(ctx context.Context, req *model.CreateWithdrawalRequest) (*model.WithdrawalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	amount := decimal.NewFromInt(req.Amount)

	w, newBalance, err := s.repo.CreatePending(ctx, req.AuthorID, amount)
	if err != nil {
		if errors.Is(err, model.ErrAmountExceedsBalance) {
			log.Warn().
				Int64("author_id", req.AuthorID).
				Int64("amount", req.Amount).
				Msg("Withdrawal amount exceeds balance")
		}
		return nil, err
	}

	log.Info().
		Int64("author_id", req.AuthorID).
		Int64("withdrawal_id", w.ID).
		Str("new_balance", newBalance.String()).
		Msg("Withdrawal created")

	return &model.WithdrawalResponse{
		ID:         w.ID,
		AuthorID:   w.AuthorID,
		Amount:     w.Amount.Round(2),
		Status:     w.Status,
		NewBalance: newBalance.Round(2),
		CreatedAt:  w.CreatedAt,
	}, nil
}

func (s *withdrawalService) History(ctx context.Context, authorID int64) ([]model.WithdrawalRecord, error) {
	exists, err := s.repo.AuthorExists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, authormodel.ErrAuthorNotFound
	}

	withdrawals, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	records := make([]model.WithdrawalRecord, 0, len(withdrawals))
	for _, w := range withdrawals {
		records = append(records, model.WithdrawalRecord{
			ID:        w.ID,
			AuthorID:  w.AuthorID,
			Amount:    w.Amount.Round(2),
			Status:    w.Status,
			CreatedAt: w.CreatedAt,
		})
	}

	return records, nil
}
