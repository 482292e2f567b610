package driven

import "context"

// TextExtractor converts raw file bytes into plain text. Extraction is
// opaque to the pipeline; any failure aborts the ingestion.
type TextExtractor interface {
	// Extract returns the plain text content of the raw file bytes.
	Extract(ctx context.Context, data []byte) (string, error)

	// SupportedExtensions returns lower-case file extensions (including
	// the dot) this extractor handles.
	SupportedExtensions() []string
}
