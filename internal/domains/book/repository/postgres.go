package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-backend/internal/domains/book"
)

// postgresRepository implements book.Repository on a pgx connection pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = "id, created_on, last_updated_on, title, description, publish_date, author_id"

// foreign_key_violation
const pgFKViolation = "23503"

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.ID,
		&b.CreatedOn,
		&b.LastUpdatedOn,
		&b.Title,
		&b.Description,
		&b.PublishDate,
		&b.AuthorID,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBooks(rows pgx.Rows) ([]book.Book, error) {
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM book`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}

	return scanBooks(rows)
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID string) ([]book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM book WHERE author_id = $1`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by author: %w", err)
	}

	return scanBooks(rows)
}

// Insert stores a new book. A foreign-key violation on author_id surfaces as
// ErrAuthorMissing; the application itself never checks author existence.
func (r *postgresRepository) Insert(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO book (id, title, description, publish_date, author_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + bookColumns

	created, err := scanBook(r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.Description, b.PublishDate, b.AuthorID))
	if err != nil {
		if isFKViolation(err) {
			return nil, fmt.Errorf("%w: %q", book.ErrAuthorMissing, b.AuthorID)
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM book WHERE id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE book
        SET title = $1, description = $2, publish_date = $3, author_id = $4,
            last_updated_on = now()
        WHERE id = $5
        RETURNING ` + bookColumns

	updated, err := scanBook(r.pool.QueryRow(ctx, query,
		b.Title, b.Description, b.PublishDate, b.AuthorID, b.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		if isFKViolation(err) {
			return nil, fmt.Errorf("%w: %q", book.ErrAuthorMissing, b.AuthorID)
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return updated, nil
}

// Delete removes the book. Zero rows affected still reports success.
func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM book WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	return nil
}

func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgFKViolation
}
