package mcp

import (
	"github.com/custodia-labs/docq/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions against the corpus.
	Ask driving.AskService

	// Ingest adds and manages documents.
	Ingest driving.IngestService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	return nil
}
