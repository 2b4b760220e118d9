package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"bookleaf-royalty/internal/domains/author/model"
	"bookleaf-royalty/internal/domains/author/repository"
)

// royaltyService implements ServiceInterface. Balances are recomputed from
// source records on every call.
type royaltyService struct {
	repo repository.RepositoryInterface
}

func NewRoyaltyService(repo repository.RepositoryInterface) ServiceInterface {
	return &royaltyService{repo: repo}
}

func (s *royaltyService) Balance(ctx context.Context, authorID int64) (model.Balance, error) {
	totalEarnings, err := s.repo.TotalEarnings(ctx, authorID)
	if err != nil {
		return model.Balance{}, err
	}

	totalWithdrawn, err := s.repo.TotalWithdrawn(ctx, authorID)
	if err != nil {
		return model.Balance{}, err
	}

	return model.Balance{
		TotalEarnings:  totalEarnings,
		TotalWithdrawn: totalWithdrawn,
		CurrentBalance: totalEarnings.Sub(totalWithdrawn),
	}, nil
}

func (s *royaltyService) ListAuthors(ctx context.Context) ([]model.AuthorBalance, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.AuthorBalance, 0, len(authors))
	for _, a := range authors {
		balance, err := s.Balance(ctx, a.ID)
		if err != nil {
			return nil, err
		}

		result = append(result, model.AuthorBalance{
			ID:             a.ID,
			Name:           a.Name,
			TotalEarnings:  balance.TotalEarnings.Round(2),
			CurrentBalance: balance.CurrentBalance.Round(2),
		})
	}

	log.Info().Int("count", len(result)).Msg("Author balances computed")
	return result, nil
}

func (s *royaltyService) GetAuthorDetail(ctx context.Context, authorID int64) (*model.AuthorDetailResponse, error) {
	a, err := s.repo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	balance, err := s.Balance(ctx, authorID)
	if err != nil {
		return nil, err
	}

	summaries, err := s.repo.BookSummaries(ctx, authorID)
	if err != nil {
		return nil, err
	}

	books := make([]model.BookBreakdown, 0, len(summaries))
	for _, b := range summaries {
		totalRoyalty := b.RoyaltyPerSale.Mul(decimal.NewFromInt(b.TotalSold))
		books = append(books, model.BookBreakdown{
			ID:             b.ID,
			Title:          b.Title,
			RoyaltyPerSale: b.RoyaltyPerSale.Round(2),
			TotalSold:      b.TotalSold,
			TotalRoyalty:   totalRoyalty.Round(2),
		})
	}

	return &model.AuthorDetailResponse{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		TotalBooks:     len(books),
		TotalEarnings:  balance.TotalEarnings.Round(2),
		CurrentBalance: balance.CurrentBalance.Round(2),
		Books:          books,
	}, nil
}

func (s *royaltyService) GetSalesHistory(ctx context.Context, authorID int64) ([]model.SaleHistoryRow, error) {
	if _, err := s.repo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	sales, err := s.repo.SalesHistory(ctx, authorID)
	if err != nil {
		return nil, err
	}

	rows := make([]model.SaleHistoryRow, 0, len(sales))
	for _, sale := range sales {
		sale.RoyaltyEarned = sale.RoyaltyEarned.Round(2)
		rows = append(rows, sale)
	}

	return rows, nil
}
