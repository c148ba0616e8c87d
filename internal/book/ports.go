package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	// List returns every book ordered by title.
	List(ctx context.Context) ([]Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	// Create stores b and returns the row as persisted.
	Create(ctx context.Context, b Book) (Book, error)
	// Update replaces all non-key fields of the book identified by isbn.
	Update(ctx context.Context, isbn string, d Details) (Book, error)
	Delete(ctx context.Context, isbn string) error
}
