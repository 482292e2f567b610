package mcp

import (
	"context"

	"github.com/custodia-labs/docq/internal/core/domain"
)

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	result *domain.AskResult
	err    error
	query  string
}

func (m *mockAskService) Ask(_ context.Context, query string) (*domain.AskResult, error) {
	m.query = query
	return m.result, m.err
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	receipt  *domain.IngestReceipt
	docs     []domain.DocumentInfo
	document *domain.Document
	err      error

	ingestedText     string
	ingestedFilename string
}

func (m *mockIngestService) Ingest(_ context.Context, text, filename string) (*domain.IngestReceipt, error) {
	m.ingestedText = text
	m.ingestedFilename = filename
	return m.receipt, m.err
}

func (m *mockIngestService) ListDocuments(_ context.Context) ([]domain.DocumentInfo, error) {
	return m.docs, m.err
}

func (m *mockIngestService) GetDocument(_ context.Context, _ string) (*domain.Document, error) {
	if m.document == nil && m.err == nil {
		return nil, domain.ErrNotFound
	}
	return m.document, m.err
}

func (m *mockIngestService) DeleteDocument(_ context.Context, _ string) error {
	return m.err
}
