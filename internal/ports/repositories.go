package ports

import (
	"context"

	"vantage/internal/domain"
)

// DocumentStore is the persistence boundary: three logical collections of
// documents with collection-scan reads. Move is the one transactional
// operation: the type-conversion create+delete must land as a single
// atomic batch so no half-converted state is ever observable.
type DocumentStore interface {
	List(ctx context.Context, collection string) ([]domain.Document, error)
	Get(ctx context.Context, collection, id string) (domain.Document, error)
	Create(ctx context.Context, collection string, doc domain.Document) error
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	Move(ctx context.Context, fromCollection, id, toCollection string, doc domain.Document) error
}
