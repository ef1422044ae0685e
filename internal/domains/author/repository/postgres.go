package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-backend/internal/domains/author"
)

// postgresRepository implements author.Repository on a pgx connection pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = "id, created_on, last_updated_on, name, bio, birth_date"

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID,
		&a.CreatedOn,
		&a.LastUpdatedOn,
		&a.Name,
		&a.Bio,
		&a.BirthDate,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all authors. No ORDER BY: the order is whatever the store
// yields, and is not guaranteed stable across calls.
func (r *postgresRepository) List(ctx context.Context) ([]author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM author`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// Insert stores a new author. RETURNING reads the row back so store-set
// timestamps appear in the response.
func (r *postgresRepository) Insert(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO author (id, name, bio, birth_date)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query, a.ID, a.Name, a.Bio, a.BirthDate))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM author WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return a, nil
}

// Update replaces every mutable field; last_updated_on is refreshed by the
// store, created_on and id stay immutable.
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE author
        SET name = $1, bio = $2, birth_date = $3, last_updated_on = now()
        WHERE id = $4
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.pool.QueryRow(ctx, query, a.Name, a.Bio, a.BirthDate, a.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return updated, nil
}

// Delete removes the author. The row count is deliberately ignored: deleting
// an absent id reports success. Books referencing the author are removed by
// the store through ON DELETE CASCADE.
func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM author WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	return nil
}
