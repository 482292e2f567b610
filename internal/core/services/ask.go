package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/docq/internal/core/domain"
	"github.com/custodia-labs/docq/internal/core/ports/driven"
	"github.com/custodia-labs/docq/internal/core/ports/driving"
	"github.com/custodia-labs/docq/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// DefaultRetrieveTopK is the size of the raw similarity retrieval set.
const DefaultRetrieveTopK = 10

// DefaultRerankTopN is the size of the re-ranked selection passed to the
// answer synthesizer.
const DefaultRerankTopN = 5

// AskConfig tunes the query pipeline. Zero values fall back to defaults.
type AskConfig struct {
	// RetrieveTopK is the number of candidates fetched by similarity.
	RetrieveTopK int

	// RerankTopN is the number of candidates kept after re-ranking.
	RerankTopN int

	// MaxAnswerTokens bounds the generated answer length.
	MaxAnswerTokens int

	// Weights override the score blending; zero means defaults.
	Weights RerankWeights
}

// AskService answers questions with a strict sequential chain: embed the
// query, retrieve by similarity, re-rank, synthesize.
type AskService struct {
	store    driven.DocumentStore
	embedder driven.EmbeddingService
	llm      driven.LLMService

	retrieveTopK    int
	rerankTopN      int
	maxAnswerTokens int
	weights         RerankWeights
}

// NewAskService creates a new ask service.
func NewAskService(
	store driven.DocumentStore,
	embedder driven.EmbeddingService,
	llm driven.LLMService,
	cfg AskConfig,
) *AskService {
	if cfg.RetrieveTopK <= 0 {
		cfg.RetrieveTopK = DefaultRetrieveTopK
	}
	if cfg.RerankTopN <= 0 {
		cfg.RerankTopN = DefaultRerankTopN
	}
	if cfg.MaxAnswerTokens <= 0 {
		cfg.MaxAnswerTokens = DefaultMaxAnswerTokens
	}
	// A half-set pair would silently zero one scoring term.
	if cfg.Weights.Similarity <= 0 || cfg.Weights.Keyword <= 0 {
		cfg.Weights = DefaultRerankWeights
	}
	return &AskService{
		store:           store,
		embedder:        embedder,
		llm:             llm,
		retrieveTopK:    cfg.RetrieveTopK,
		rerankTopN:      cfg.RerankTopN,
		maxAnswerTokens: cfg.MaxAnswerTokens,
		weights:         cfg.Weights,
	}
}

// Ask runs the full retrieval pipeline for the query.
func (s *AskService) Ask(ctx context.Context, query string) (*domain.AskResult, error) {
	logger.Section("Ask Pipeline")

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	logger.Debug("Query: %q", query)

	queryVector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %w", domain.ErrRetrieval, err)
	}
	logger.Debug("Query embedding: %d dimensions", len(queryVector))

	candidates, err := s.store.SearchSimilar(ctx, queryVector, s.retrieveTopK)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRetrieval, err)
	}
	logger.Debug("Retrieved %d candidates", len(candidates))

	if len(candidates) == 0 {
		logger.Info("No chunks in store, short-circuiting")
		return &domain.AskResult{
			Query:          query,
			Answer:         domain.NoAnswerText,
			AllChunks:      []domain.ChunkView{},
			SelectedChunks: []domain.RankedChunkView{},
		}, nil
	}

	ranked := Rerank(query, candidates, s.rerankTopN, s.weights)
	logger.Debug("Re-ranked to %d candidates", len(ranked))

	answer, err := synthesize(ctx, s.llm, query, ranked, s.maxAnswerTokens)
	if err != nil {
		return nil, err
	}
	logger.Info("Answer synthesized (%d chars)", len(answer))

	return &domain.AskResult{
		Query:          query,
		Answer:         answer,
		AllChunks:      chunkViews(candidates),
		SelectedChunks: rankedChunkViews(ranked),
	}, nil
}

// chunkViews shapes retrieval candidates for external reporting, rounding
// scores to 4 decimal places.
func chunkViews(candidates []domain.RetrievalCandidate) []domain.ChunkView {
	views := make([]domain.ChunkView, len(candidates))
	for i, candidate := range candidates {
		views[i] = domain.ChunkView{
			ID:              candidate.Chunk.ID,
			Text:            candidate.Chunk.Text,
			SimilarityScore: domain.RoundScore(candidate.Similarity),
			Filename:        candidate.Filename,
			ChunkIndex:      candidate.Chunk.Position,
		}
	}
	return views
}

// rankedChunkViews shapes ranked candidates for external reporting.
func rankedChunkViews(ranked []domain.RankedCandidate) []domain.RankedChunkView {
	views := make([]domain.RankedChunkView, len(ranked))
	for i, candidate := range ranked {
		views[i] = domain.RankedChunkView{
			ChunkView: domain.ChunkView{
				ID:              candidate.Chunk.ID,
				Text:            candidate.Chunk.Text,
				SimilarityScore: domain.RoundScore(candidate.Similarity),
				Filename:        candidate.Filename,
				ChunkIndex:      candidate.Chunk.Position,
			},
			KeywordScore: candidate.KeywordScore,
			FinalScore:   domain.RoundScore(candidate.FinalScore),
		}
	}
	return views
}
