package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type seedAuthor struct {
	id    int64
	name  string
	email string
	bank  string
	ifsc  string
}

type seedBook struct {
	id       int64
	title    string
	authorID int64
	royalty  decimal.Decimal
}

type seedSale struct {
	bookID   int64
	quantity int
	date     string
}

var seedAuthors = []seedAuthor{
	{1, "Priya Sharma", "priya@email.com", "1234567890", "HDFC0001234"},
	{2, "Rahul Verma", "rahul@email.com", "0987654321", "ICIC0005678"},
	{3, "Anita Desai", "anita@email.com", "5678901234", "SBIN0009012"},
}

var seedBooks = []seedBook{
	{1, "The Silent River", 1, decimal.NewFromInt(45)},
	{2, "Midnight in Mumbai", 1, decimal.NewFromInt(60)},
	{3, "Code & Coffee", 2, decimal.NewFromInt(75)},
	{4, "Startup Diaries", 2, decimal.NewFromInt(50)},
	{5, "Poetry of Pain", 2, decimal.NewFromInt(30)},
	{6, "Garden of Words", 3, decimal.NewFromInt(40)},
}

var seedSales = []seedSale{
	{1, 25, "2025-01-05"},
	{1, 40, "2025-01-12"},
	{2, 15, "2025-01-08"},
	{3, 60, "2025-01-03"},
	{3, 45, "2025-01-15"},
	{4, 30, "2025-01-10"},
	{5, 20, "2025-01-18"},
	{6, 10, "2025-01-20"},
}

// Seed inserts the demo dataset when the authors table is empty. Idempotent:
// a non-empty table means an earlier run already seeded.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check authors table: %w", err)
	}
	if count > 0 {
		log.Info().Msg("Database already seeded")
		return nil
	}

	log.Info().Msg("Seeding database")

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range seedAuthors {
		_, err := tx.Exec(ctx,
			`INSERT INTO authors (id, name, email, bank, ifsc) VALUES ($1, $2, $3, $4, $5)`,
			a.id, a.name, a.email, a.bank, a.ifsc,
		)
		if err != nil {
			return fmt.Errorf("failed to seed author %d: %w", a.id, err)
		}
	}

	for _, b := range seedBooks {
		_, err := tx.Exec(ctx,
			`INSERT INTO books (id, title, royalty_per_sale, author_id) VALUES ($1, $2, $3, $4)`,
			b.id, b.title, b.royalty, b.authorID,
		)
		if err != nil {
			return fmt.Errorf("failed to seed book %d: %w", b.id, err)
		}
	}

	for _, s := range seedSales {
		saleDate, err := time.Parse("2006-01-02", s.date)
		if err != nil {
			return fmt.Errorf("invalid seed sale date %q: %w", s.date, err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO sales (quantity, sale_date, book_id) VALUES ($1, $2, $3)`,
			s.quantity, saleDate, s.bookID,
		)
		if err != nil {
			return fmt.Errorf("failed to seed sale for book %d: %w", s.bookID, err)
		}
	}

	// Seeding inserts explicit ids, so advance the sequences past them.
	sequences := []struct{ seq, table string }{
		{"authors_id_seq", "authors"},
		{"books_id_seq", "books"},
	}
	for _, s := range sequences {
		stmt := fmt.Sprintf(
			`SELECT setval('%s', (SELECT COALESCE(MAX(id), 1) FROM %s))`,
			s.seq, s.table,
		)
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to advance sequence %s: %w", s.seq, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	log.Info().Msg("Seeding completed successfully")
	return nil
}
