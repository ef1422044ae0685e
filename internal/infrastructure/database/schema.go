package database

import (
	"context"
	"fmt"
)

// Schema for the two tables this service owns. book.author_id carries the
// foreign key with ON DELETE CASCADE: deleting an author deletes its books,
// and inserting a book with an unknown author_id is rejected by the store.
const schema = `
CREATE TABLE IF NOT EXISTS author (
    id              TEXT PRIMARY KEY,
    created_on      TIMESTAMPTZ NOT NULL DEFAULT now(),
    last_updated_on TIMESTAMPTZ NOT NULL DEFAULT now(),
    name            TEXT,
    bio             TEXT,
    birth_date      DATE
);

CREATE TABLE IF NOT EXISTS book (
    id              TEXT PRIMARY KEY,
    created_on      TIMESTAMPTZ NOT NULL DEFAULT now(),
    last_updated_on TIMESTAMPTZ NOT NULL DEFAULT now(),
    title           TEXT,
    description     TEXT,
    publish_date    DATE,
    author_id       TEXT NOT NULL REFERENCES author(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_book_author_id ON book(author_id);
`

// EnsureSchema creates the tables on startup if they do not exist yet.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}
