package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/poi-catalog/internal/domain/repository"
	"go.uber.org/zap"
)

type documentStore struct {
	db     *DB
	logger *zap.Logger
}

// NewDocumentStore создаёт документное хранилище поверх таблицы documents.
// Документы лежат целиком в одной JSONB-колонке; запрос по полю идёт через
// оператор ->> по верхнеуровневому ключу.
func NewDocumentStore(db *DB) repository.DocumentStore {
	return &documentStore{
		db:     db,
		logger: db.logger,
	}
}

func (s *documentStore) Set(ctx context.Context, collection, id string, doc []byte) error {
	const query = `
		INSERT INTO documents (collection, id, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO UPDATE SET doc = EXCLUDED.doc`

	if _, err := s.db.ExecContext(ctx, query, collection, id, doc); err != nil {
		s.logger.Error("Failed to set document",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err),
		)
		return fmt.Errorf("document set error: %w", err)
	}
	return nil
}

func (s *documentStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	const query = `SELECT doc FROM documents WHERE collection = $1 AND id = $2`

	var doc []byte
	err := s.db.GetContext(ctx, &doc, query, collection, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // absence is not an error
	}
	if err != nil {
		s.logger.Error("Failed to get document",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, fmt.Errorf("document get error: %w", err)
	}
	return doc, nil
}

func (s *documentStore) Query(ctx context.Context, collection, field, value string) ([][]byte, error) {
	const query = `SELECT doc FROM documents WHERE collection = $1 AND doc->>$2 = $3`

	var docs [][]byte
	if err := s.db.SelectContext(ctx, &docs, query, collection, field, value); err != nil {
		s.logger.Error("Failed to query documents",
			zap.String("collection", collection),
			zap.String("field", field),
			zap.Error(err),
		)
		return nil, fmt.Errorf("document query error: %w", err)
	}
	return docs, nil
}

func (s *documentStore) Scan(ctx context.Context, collection string) ([][]byte, error) {
	const query = `SELECT doc FROM documents WHERE collection = $1`

	var docs [][]byte
	if err := s.db.SelectContext(ctx, &docs, query, collection); err != nil {
		s.logger.Error("Failed to scan collection",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return nil, fmt.Errorf("document scan error: %w", err)
	}
	return docs, nil
}

func (s *documentStore) Delete(ctx context.Context, collection, id string) (bool, error) {
	const query = `DELETE FROM documents WHERE collection = $1 AND id = $2`

	res, err := s.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		s.logger.Error("Failed to delete document",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err),
		)
		return false, fmt.Errorf("document delete error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("document delete error: %w", err)
	}
	return affected > 0, nil
}
