package domain

import "time"

// Document represents an ingested document. It is created once at ingestion
// and never modified afterwards.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Filename is the original name of the uploaded file.
	Filename string

	// Text is the full extracted text content.
	Text string

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// DocumentInfo is the listing view of a document, without its full text.
type DocumentInfo struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
}

// Chunk is a bounded-size, possibly-overlapping passage of a document's
// text, embedded and stored independently for retrieval.
//
// For a given document the chunk positions are 0..n-1 with no gaps or
// duplicates, and every embedding has the dimensionality produced by the
// embedding service at ingestion time.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links back to the owning Document.
	DocumentID string

	// Text is the chunk's text content.
	Text string

	// Position is the zero-based ordinal within the document.
	Position int

	// Embedding is the vector representation used for similarity search.
	Embedding []float32
}
