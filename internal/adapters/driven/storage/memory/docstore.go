// Package memory provides an in-memory document store. Nothing survives
// the process; it backs tests and the --memory flag for throwaway sessions.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docq/internal/core/domain"
	"github.com/custodia-labs/docq/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	docOrder  []string
	chunks    []storedChunk
}

// storedChunk keeps the chunk together with its document's filename so
// search does not need a join.
type storedChunk struct {
	chunk    domain.Chunk
	filename string
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// CreateDocument stores a new document and returns it with a generated ID.
func (s *DocumentStore) CreateDocument(_ context.Context, filename, text string) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := domain.Document{
		ID:        uuid.New().String(),
		Filename:  filename,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	s.documents[doc.ID] = doc
	s.docOrder = append(s.docOrder, doc.ID)
	return &doc, nil
}

// SaveChunks appends chunks in the given order.
func (s *DocumentStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, chunk := range chunks {
		filename := ""
		if doc, ok := s.documents[chunk.DocumentID]; ok {
			filename = doc.Filename
		}
		s.chunks = append(s.chunks, storedChunk{chunk: chunk, filename: filename})
	}
	return nil
}

// SearchSimilar scores every chunk against the query vector by cosine
// similarity and returns the topK best, highest first. Equal scores keep
// insertion order.
func (s *DocumentStore) SearchSimilar(_ context.Context, query []float32, topK int) ([]domain.RetrievalCandidate, error) {
	if topK <= 0 {
		return []domain.RetrievalCandidate{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := []domain.RetrievalCandidate{}
	for _, stored := range s.chunks {
		if len(stored.chunk.Embedding) != len(query) {
			return nil, fmt.Errorf("chunk %s: embedding dimension %d does not match query dimension %d",
				stored.chunk.ID, len(stored.chunk.Embedding), len(query))
		}
		candidates = append(candidates, domain.RetrievalCandidate{
			Chunk:      stored.chunk,
			Filename:   stored.filename,
			Similarity: cosineSimilarity(query, stored.chunk.Embedding),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})

	if topK < len(candidates) {
		candidates = candidates[:topK]
	}
	return candidates, nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// GetChunks retrieves all chunks for a document ordered by position.
func (s *DocumentStore) GetChunks(_ context.Context, documentID string) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var chunks []domain.Chunk
	for _, stored := range s.chunks {
		if stored.chunk.DocumentID == documentID {
			chunks = append(chunks, stored.chunk)
		}
	}
	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].Position < chunks[j].Position
	})
	return chunks, nil
}

// ListDocuments returns document metadata, newest first.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.DocumentInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []domain.DocumentInfo{}
	for i := len(s.docOrder) - 1; i >= 0; i-- {
		doc := s.documents[s.docOrder[i]]
		docs = append(docs, domain.DocumentInfo{
			ID:        doc.ID,
			Filename:  doc.Filename,
			CreatedAt: doc.CreatedAt,
		})
	}
	return docs, nil
}

// DeleteDocument removes a document and its chunks.
func (s *DocumentStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.documents, id)

	for i, docID := range s.docOrder {
		if docID == id {
			s.docOrder = append(s.docOrder[:i], s.docOrder[i+1:]...)
			break
		}
	}

	kept := s.chunks[:0]
	for _, stored := range s.chunks {
		if stored.chunk.DocumentID != id {
			kept = append(kept, stored)
		}
	}
	s.chunks = kept
	return nil
}

// Close is a no-op for the in-memory store.
func (s *DocumentStore) Close() error {
	return nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// A zero vector on either side yields 0.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
