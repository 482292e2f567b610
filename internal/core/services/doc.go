// Package services implements the question-answering pipeline: ingestion
// (chunk, embed, store) and querying (embed, retrieve, rerank, synthesize).
// All external capabilities are injected through the driven ports.
package services
