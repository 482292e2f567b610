package driven

import (
	"context"

	"github.com/custodia-labs/docq/internal/core/domain"
)

// DocumentStore persists documents and their embedded chunks, and answers
// vector similarity queries over the stored embeddings.
type DocumentStore interface {
	// CreateDocument stores a new document and returns it with its
	// identity and creation timestamp filled in.
	CreateDocument(ctx context.Context, filename, text string) (*domain.Document, error)

	// SaveChunks stores the chunks of a document. Stores with
	// transactional semantics insert all-or-nothing.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// SearchSimilar returns the topK stored chunks most similar to the
	// query vector, joined with their parent document's filename, ordered
	// by descending cosine similarity. Ties keep store order. An empty
	// corpus yields an empty slice, not an error.
	SearchSimilar(ctx context.Context, query []float32, topK int) ([]domain.RetrievalCandidate, error)

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetChunks retrieves a document's chunks ordered by position.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// ListDocuments returns all documents, newest first.
	ListDocuments(ctx context.Context) ([]domain.DocumentInfo, error)

	// DeleteDocument removes a document and its chunks.
	DeleteDocument(ctx context.Context, id string) error

	// Close releases resources.
	Close() error
}
