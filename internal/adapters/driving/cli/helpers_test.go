package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/docq/internal/core/domain"
)

// mockAskService implements driving.AskService with canned responses.
type mockAskService struct {
	result *domain.AskResult
	err    error

	lastQuery string
}

func (m *mockAskService) Ask(_ context.Context, query string) (*domain.AskResult, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockIngestService implements driving.IngestService with canned responses.
type mockIngestService struct {
	receipt  *domain.IngestReceipt
	docs     []domain.DocumentInfo
	document *domain.Document
	err      error

	ingestedText     string
	ingestedFilename string
	deletedID        string
}

func (m *mockIngestService) Ingest(_ context.Context, text, filename string) (*domain.IngestReceipt, error) {
	m.ingestedText = text
	m.ingestedFilename = filename
	if m.err != nil {
		return nil, m.err
	}
	return m.receipt, nil
}

func (m *mockIngestService) ListDocuments(_ context.Context) ([]domain.DocumentInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.docs, nil
}

func (m *mockIngestService) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.document == nil {
		return nil, domain.ErrNotFound
	}
	return m.document, nil
}

func (m *mockIngestService) DeleteDocument(_ context.Context, id string) error {
	m.deletedID = id
	return m.err
}

// setupTestServices injects mock services into the package-level wiring so
// commands run without touching the network or disk. The returned cleanup
// restores the zero state.
func setupTestServices() func() {
	ask := &mockAskService{
		result: &domain.AskResult{
			Query:  "test query",
			Answer: "The revenue grew 20% in 2023.",
			SelectedChunks: []domain.RankedChunkView{
				{
					ChunkView: domain.ChunkView{
						ID:              "chunk-1",
						Text:            "Revenue grew 20% in 2023.",
						SimilarityScore: 0.9134,
						Filename:        "report.pdf",
						ChunkIndex:      2,
					},
					KeywordScore: 3,
					FinalScore:   0.7394,
				},
			},
		},
	}
	ingest := &mockIngestService{
		receipt: &domain.IngestReceipt{DocumentID: "doc-1", ChunkCount: 4},
		docs: []domain.DocumentInfo{
			{ID: "doc-1", Filename: "report.pdf", CreatedAt: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
			{ID: "doc-2", Filename: "notes.txt", CreatedAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)},
		},
		document: &domain.Document{
			ID:       "doc-1",
			Filename: "report.pdf",
			Text:     "Revenue grew 20% in 2023.",
		},
	}

	askService = ask
	ingestService = ingest

	return func() {
		askService = nil
		ingestService = nil
	}
}

// testServices exposes the injected mocks for assertions.
func testServices() (*mockAskService, *mockIngestService) {
	return askService.(*mockAskService), ingestService.(*mockIngestService)
}
