package domain

import "errors"

// Pipeline errors. Every failure in the question-answering pipeline aborts
// the current invocation and is surfaced wrapped around one of these
// sentinels; none are silently swallowed and no stage retries internally.
var (
	// ErrValidation indicates missing or empty input (query, document text).
	ErrValidation = errors.New("invalid input")

	// ErrExtraction indicates text extraction from a raw file failed.
	ErrExtraction = errors.New("text extraction failed")

	// ErrEmbedding indicates the embedding service errored or returned a
	// malformed vector.
	ErrEmbedding = errors.New("embedding failed")

	// ErrRetrieval indicates the document store was unavailable or the
	// similarity query was malformed.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration indicates the generation service errored, timed out,
	// or returned empty output.
	ErrGeneration = errors.New("generation failed")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
