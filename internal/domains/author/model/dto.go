package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is the computed royalty position for one author. Values keep full
// precision; rounding happens when building response DTOs.
type Balance struct {
	TotalEarnings  decimal.Decimal
	TotalWithdrawn decimal.Decimal
	CurrentBalance decimal.Decimal
}

// AuthorBalance - one row of GET /authors
type AuthorBalance struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// BookBreakdown - per-book row inside the author detail view
type BookBreakdown struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	RoyaltyPerSale decimal.Decimal `json:"royalty_per_sale"`
	TotalSold      int64           `json:"total_sold"`
	TotalRoyalty   decimal.Decimal `json:"total_royalty"`
}

// AuthorDetailResponse - GET /authors/:author_id
type AuthorDetailResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Email          *string         `json:"email"`
	TotalBooks     int             `json:"total_books"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Books          []BookBreakdown `json:"books"`
}

// BookSummary - repository row: a book with the sum of its sale quantities.
type BookSummary struct {
	ID             int64
	Title          string
	RoyaltyPerSale decimal.Decimal
	TotalSold      int64
}

// SaleHistoryRow - one row of GET /authors/:author_id/sales, most recent first.
type SaleHistoryRow struct {
	BookTitle     string          `json:"book_title"`
	Quantity      int             `json:"quantity"`
	RoyaltyEarned decimal.Decimal `json:"royalty_earned"`
	SaleDate      time.Time       `json:"sale_date"`
}
