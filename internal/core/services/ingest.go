package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/docq/internal/chunker"
	"github.com/custodia-labs/docq/internal/core/domain"
	"github.com/custodia-labs/docq/internal/core/ports/driven"
	"github.com/custodia-labs/docq/internal/core/ports/driving"
	"github.com/custodia-labs/docq/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService runs the ingestion pipeline: chunk the document text,
// embed each chunk, and persist document and chunks.
//
// Known consistency caveat: the document row is created before its chunks.
// Chunk insertion itself is all-or-nothing where the store supports
// transactions, but a failure after document creation leaves a document
// with no chunks. This is surfaced, never silently repaired.
type IngestService struct {
	store    driven.DocumentStore
	embedder driven.EmbeddingService
	chunker  *chunker.Chunker
}

// NewIngestService creates a new ingest service.
func NewIngestService(store driven.DocumentStore, embedder driven.EmbeddingService, c *chunker.Chunker) *IngestService {
	if c == nil {
		c = chunker.New()
	}
	return &IngestService{store: store, embedder: embedder, chunker: c}
}

// Ingest chunks, embeds, and stores the given document text.
func (s *IngestService) Ingest(ctx context.Context, text, filename string) (*domain.IngestReceipt, error) {
	logger.Section("Ingest Pipeline")

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: document text is required", domain.ErrValidation)
	}
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", domain.ErrValidation)
	}

	doc, err := s.store.CreateDocument(ctx, filename, text)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	logger.Debug("Document %s created (%d chars)", doc.ID, len(text))

	texts := s.chunker.Chunk(text)
	logger.Debug("Chunked into %d chunks", len(texts))
	if len(texts) == 0 {
		// Nothing embeddable; the document is kept for listing.
		return &domain.IngestReceipt{DocumentID: doc.ID, ChunkCount: 0}, nil
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbedding, err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d chunks", domain.ErrEmbedding, len(vectors), len(texts))
	}

	dimensions := s.embedder.Dimensions()
	chunks := make([]domain.Chunk, len(texts))
	for i, chunkText := range texts {
		if dimensions > 0 && len(vectors[i]) != dimensions {
			return nil, fmt.Errorf("%w: chunk %d has %d dimensions, want %d",
				domain.ErrEmbedding, i, len(vectors[i]), dimensions)
		}
		chunks[i] = domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Text:       chunkText,
			Position:   i,
			Embedding:  vectors[i],
		}
	}

	if err := s.store.SaveChunks(ctx, chunks); err != nil {
		return nil, fmt.Errorf("save chunks: %w", err)
	}
	logger.Info("Ingested %s as document %s with %d chunks", filename, doc.ID, len(chunks))

	return &domain.IngestReceipt{DocumentID: doc.ID, ChunkCount: len(chunks)}, nil
}

// ListDocuments returns all ingested documents, newest first.
func (s *IngestService) ListDocuments(ctx context.Context) ([]domain.DocumentInfo, error) {
	return s.store.ListDocuments(ctx)
}

// GetDocument returns a stored document including its full text.
func (s *IngestService) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: document id is required", domain.ErrValidation)
	}
	return s.store.GetDocument(ctx, id)
}

// DeleteDocument removes a document and its chunks.
func (s *IngestService) DeleteDocument(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: document id is required", domain.ErrValidation)
	}
	if err := s.store.DeleteDocument(ctx, id); err != nil {
		return err
	}
	logger.Info("Deleted document %s", id)
	return nil
}
