package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// schemaStatements create the four royalty tables. Run in order because of
// the foreign keys.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT NOT NULL,
		email TEXT UNIQUE,
		bank  TEXT,
		ifsc  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id               BIGSERIAL PRIMARY KEY,
		title            TEXT NOT NULL,
		royalty_per_sale NUMERIC(12,2) NOT NULL CHECK (royalty_per_sale >= 0),
		author_id        BIGINT NOT NULL REFERENCES authors (id)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id        BIGSERIAL PRIMARY KEY,
		quantity  INTEGER NOT NULL CHECK (quantity > 0),
		sale_date TIMESTAMPTZ NOT NULL,
		book_id   BIGINT NOT NULL REFERENCES books (id)
	)`,
	`CREATE TABLE IF NOT EXISTS withdrawals (
		id         BIGSERIAL PRIMARY KEY,
		amount     NUMERIC(12,2) NOT NULL CHECK (amount > 0),
		status     TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		author_id  BIGINT NOT NULL REFERENCES authors (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_book_id ON sales (book_id)`,
	`CREATE INDEX IF NOT EXISTS idx_withdrawals_author_id ON withdrawals (author_id)`,
}

// EnsureSchema creates the tables if they do not exist yet. Safe to run on
// every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	log.Info().Msg("Database schema ensured")
	return nil
}
