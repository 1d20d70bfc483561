package repository

import "context"

// DocumentStore определяет пять операций внешнего документного хранилища.
// Доменный слой не зависит ни от чего сверх этого контракта.
type DocumentStore interface {
	// Set upserts the document under (collection, id), overwriting any
	// prior value.
	Set(ctx context.Context, collection, id string, doc []byte) error

	// Get returns the document or (nil, nil) when absent. Absence is not
	// an error.
	Get(ctx context.Context, collection, id string) ([]byte, error)

	// Query returns documents whose top-level field equals value
	// (exact match only).
	Query(ctx context.Context, collection, field, value string) ([][]byte, error)

	// Scan returns every document in the collection, order unspecified.
	Scan(ctx context.Context, collection string) ([][]byte, error)

	// Delete removes the document if present and reports whether a
	// removal occurred. Deleting a missing id is not an error.
	Delete(ctx context.Context, collection, id string) (bool, error)
}
