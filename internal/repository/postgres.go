package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safeguard_backend/internal/models"
)

// PostgresDocuments хранит документы одного типа в JSONB-таблице
// (id TEXT PRIMARY KEY, document JSONB, created_at TIMESTAMPTZ)
type PostgresDocuments[T models.Document] struct {
	db     *pgxpool.Pool
	table  string
	newDoc func() T
}

func NewPostgresDocuments[T models.Document](db *pgxpool.Pool, table string, newDoc func() T) *PostgresDocuments[T] {
	return &PostgresDocuments[T]{
		db:     db,
		table:  table,
		newDoc: newDoc,
	}
}

// Create вставляет документ, повтор id - models.ErrAlreadyExists
func (r *PostgresDocuments[T]) Create(ctx context.Context, doc T) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s document: %w", r.table, err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, document) VALUES ($1, $2);`, r.table)
	if _, err := r.db.Exec(ctx, query, doc.DocumentID(), payload); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s document %s: %w", r.table, doc.DocumentID(), models.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create %s document: %w", r.table, err)
	}
	return nil
}

// GetByID возвращает документ по id
func (r *PostgresDocuments[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	var payload []byte

	query := fmt.Sprintf(`SELECT document FROM %s WHERE id = $1;`, r.table)
	if err := r.db.QueryRow(ctx, query, id).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, fmt.Errorf("%s document %s: %w", r.table, id, models.ErrNotFound)
		}
		return zero, fmt.Errorf("failed to get %s document by id: %w", r.table, err)
	}

	doc, err := r.decode(payload)
	if err != nil {
		return zero, err
	}
	return doc, nil
}

// List возвращает не больше limit документов в порядке создания
func (r *PostgresDocuments[T]) List(ctx context.Context, limit int) ([]T, error) {
	query := fmt.Sprintf(`
		SELECT document
		FROM %s
		ORDER BY created_at, id
		LIMIT $1;
	`, r.table)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", r.table, err)
	}
	defer rows.Close()

	docs := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		doc, err := r.decode(payload)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error %s list iteration: %w", r.table, err)
	}
	return docs, nil
}

func (r *PostgresDocuments[T]) decode(payload []byte) (T, error) {
	doc := r.newDoc()
	if err := json.Unmarshal(payload, doc); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to unmarshal %s document: %w", r.table, err)
	}
	return doc, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
