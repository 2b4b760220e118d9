package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Author owns books and withdrawals. Authors are never deleted.
type Author struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Email *string `json:"email" db:"email"`
	Bank  *string `json:"bank" db:"bank"`
	IFSC  *string `json:"ifsc" db:"ifsc"`
}

// Book belongs to exactly one author. royalty_per_sale is fixed per book.
type Book struct {
	ID             int64           `json:"id" db:"id"`
	Title          string          `json:"title" db:"title"`
	RoyaltyPerSale decimal.Decimal `json:"royalty_per_sale" db:"royalty_per_sale"`
	AuthorID       int64           `json:"author_id" db:"author_id"`
}

// Sale is an append-only record of units sold for a book.
type Sale struct {
	ID       int64     `json:"id" db:"id"`
	Quantity int       `json:"quantity" db:"quantity"`
	SaleDate time.Time `json:"sale_date" db:"sale_date"`
	BookID   int64     `json:"book_id" db:"book_id"`
}
