package services

import (
	"context"
	"time"

	"github.com/custodia-labs/docq/internal/core/domain"
	"github.com/custodia-labs/docq/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbedder implements driven.EmbeddingService for testing.
type mockEmbedder struct {
	vector     []float32
	batch      [][]float32
	embedErr   error
	batchErr   error
	dims       int
	batchTexts [][]string
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.vector, nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.batchTexts = append(m.batchTexts, texts)
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	if m.batch != nil {
		return m.batch, nil
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = m.vector
	}
	return result, nil
}

func (m *mockEmbedder) Dimensions() int {
	if m.dims > 0 {
		return m.dims
	}
	return len(m.vector)
}

func (m *mockEmbedder) ModelName() string { return "mock-embed" }

func (m *mockEmbedder) Ping(_ context.Context) error { return nil }

func (m *mockEmbedder) Close() error { return nil }

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	response string
	err      error
	prompts  []string
	opts     []driven.GenerateOptions
}

func (m *mockLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.prompts = append(m.prompts, prompt)
	m.opts = append(m.opts, opts)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }

func (m *mockLLM) Ping(_ context.Context) error { return nil }

func (m *mockLLM) Close() error { return nil }

// mockStore implements driven.DocumentStore for testing.
type mockStore struct {
	candidates  []domain.RetrievalCandidate
	docs        []domain.DocumentInfo
	savedChunks []domain.Chunk
	createdDocs []domain.Document
	createErr   error
	saveErr     error
	searchErr   error
	listErr     error
	searchTopK  int
}

func (m *mockStore) CreateDocument(_ context.Context, filename, text string) (*domain.Document, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	doc := domain.Document{
		ID:        "doc-1",
		Filename:  filename,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	m.createdDocs = append(m.createdDocs, doc)
	return &doc, nil
}

func (m *mockStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedChunks = append(m.savedChunks, chunks...)
	return nil
}

func (m *mockStore) SearchSimilar(_ context.Context, _ []float32, topK int) ([]domain.RetrievalCandidate, error) {
	m.searchTopK = topK
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if topK < len(m.candidates) {
		return m.candidates[:topK], nil
	}
	return m.candidates, nil
}

func (m *mockStore) GetDocument(_ context.Context, _ string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (m *mockStore) GetChunks(_ context.Context, _ string) ([]domain.Chunk, error) {
	return nil, nil
}

func (m *mockStore) ListDocuments(_ context.Context) ([]domain.DocumentInfo, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.docs, nil
}

func (m *mockStore) DeleteDocument(_ context.Context, _ string) error { return nil }

func (m *mockStore) Close() error { return nil }

var (
	_ driven.EmbeddingService = (*mockEmbedder)(nil)
	_ driven.LLMService       = (*mockLLM)(nil)
	_ driven.DocumentStore    = (*mockStore)(nil)
)

// candidate builds a RetrievalCandidate for test fixtures.
func candidate(id, text string, position int, similarity float64) domain.RetrievalCandidate {
	return domain.RetrievalCandidate{
		Chunk: domain.Chunk{
			ID:         id,
			DocumentID: "doc-1",
			Text:       text,
			Position:   position,
		},
		Filename:   "report.pdf",
		Similarity: similarity,
	}
}
