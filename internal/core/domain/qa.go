package domain

import "math"

// RetrievalCandidate is a chunk returned by similarity search, joined with
// its parent document's filename. Query-time only; never persisted.
type RetrievalCandidate struct {
	// Chunk is the matched chunk.
	Chunk Chunk

	// Filename is the parent document's original filename.
	Filename string

	// Similarity is the cosine similarity to the query, in [-1, 1].
	Similarity float64
}

// RankedCandidate is a RetrievalCandidate after hybrid re-ranking.
type RankedCandidate struct {
	RetrievalCandidate

	// KeywordScore counts query tokens matched by the chunk text.
	KeywordScore int

	// FinalScore is the blended similarity + keyword score. Ordering by
	// FinalScore descending is the only meaningful order.
	FinalScore float64
}

// IngestReceipt reports the outcome of a successful ingestion.
type IngestReceipt struct {
	DocumentID string `json:"document_id"`
	ChunkCount int    `json:"chunk_count"`
}

// ChunkView is the externally reported form of a retrieved chunk.
// Scores are rounded for display; internal ranking uses raw values.
type ChunkView struct {
	ID              string  `json:"id"`
	Text            string  `json:"text"`
	SimilarityScore float64 `json:"similarity_score"`
	Filename        string  `json:"filename"`
	ChunkIndex      int     `json:"chunk_index"`
}

// RankedChunkView extends ChunkView with re-ranking scores.
type RankedChunkView struct {
	ChunkView
	KeywordScore int     `json:"keyword_score"`
	FinalScore   float64 `json:"final_score"`
}

// AskResult is the full outcome of a question: the synthesized answer plus
// both the raw retrieval set and the re-ranked selection, for observability.
type AskResult struct {
	Query          string            `json:"query"`
	Answer         string            `json:"answer"`
	AllChunks      []ChunkView       `json:"all_chunks"`
	SelectedChunks []RankedChunkView `json:"selected_chunks"`
}

// NoAnswerText is returned when retrieval finds no chunks at all.
const NoAnswerText = "No relevant information found in the document."

// RoundScore rounds a score to 4 decimal places for external display.
func RoundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
