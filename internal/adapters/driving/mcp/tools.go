package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the ingested documents"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer  string        `json:"answer"`
	Sources []SourceChunk `json:"sources"`
}

// SourceChunk is a chunk the answer was grounded on.
type SourceChunk struct {
	ChunkID    string  `json:"chunk_id"`
	Filename   string  `json:"filename"`
	ChunkIndex int     `json:"chunk_index"`
	Text       string  `json:"text"`
	FinalScore float64 `json:"final_score"`
}

// IngestTextInput is the input schema for the ingest_text tool.
type IngestTextInput struct {
	Text     string `json:"text" jsonschema:"the document text to ingest"`
	Filename string `json:"filename" jsonschema:"a name to identify the document by"`
}

// IngestTextOutput is the output schema for the ingest_text tool.
type IngestTextOutput struct {
	DocumentID string `json:"document_id"`
	ChunkCount int    `json:"chunk_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question using the ingested documents",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ingest_text",
		Description: "Ingest a text document into the corpus",
	}, s.handleIngestText)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	result, err := s.ports.Ask.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:  result.Answer,
		Sources: make([]SourceChunk, len(result.SelectedChunks)),
	}
	for i, chunk := range result.SelectedChunks {
		output.Sources[i] = SourceChunk{
			ChunkID:    chunk.ID,
			Filename:   chunk.Filename,
			ChunkIndex: chunk.ChunkIndex,
			Text:       chunk.Text,
			FinalScore: chunk.FinalScore,
		}
	}

	return nil, output, nil
}

// handleIngestText handles the ingest_text tool invocation.
func (s *Server) handleIngestText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestTextInput,
) (*mcp.CallToolResult, IngestTextOutput, error) {
	receipt, err := s.ports.Ingest.Ingest(ctx, input.Text, input.Filename)
	if err != nil {
		return nil, IngestTextOutput{}, err
	}

	return nil, IngestTextOutput{
		DocumentID: receipt.DocumentID,
		ChunkCount: receipt.ChunkCount,
	}, nil
}
