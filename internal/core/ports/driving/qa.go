package driving

import (
	"context"

	"github.com/custodia-labs/docq/internal/core/domain"
)

// IngestService adds documents to the corpus.
type IngestService interface {
	// Ingest chunks, embeds, and stores the given document text.
	Ingest(ctx context.Context, text, filename string) (*domain.IngestReceipt, error)

	// ListDocuments returns all ingested documents, newest first.
	ListDocuments(ctx context.Context) ([]domain.DocumentInfo, error)

	// GetDocument returns a stored document including its full text.
	// Returns domain.ErrNotFound for unknown IDs.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// DeleteDocument removes a document and its chunks.
	// Returns domain.ErrNotFound for unknown IDs.
	DeleteDocument(ctx context.Context, id string) error
}

// AskService answers natural-language questions against the corpus.
type AskService interface {
	// Ask runs the full retrieval pipeline for the query and returns the
	// synthesized answer together with the retrieval and selection sets.
	Ask(ctx context.Context, query string) (*domain.AskResult, error)
}
