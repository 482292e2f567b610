package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/docq/internal/core/domain"
)

// RerankWeights blends retrieval similarity with lexical keyword overlap.
// The defaults are part of the scoring contract; change them only together
// with the behavioural tests.
type RerankWeights struct {
	Similarity float64
	Keyword    float64
}

// DefaultRerankWeights weights similarity 0.7 and keyword overlap 0.3.
var DefaultRerankWeights = RerankWeights{Similarity: 0.7, Keyword: 0.3}

// Rerank reorders the entire candidate set by a blend of retrieval
// similarity and keyword overlap, then truncates to topN.
//
// Keyword scoring: the query is lower-cased and split on whitespace; each
// query token scores 1 if any token of the chunk text contains it as a
// substring. The keyword term is normalised by the query token count; an
// empty token set contributes 0 rather than dividing by zero.
//
// Ordering: final score descending, ties by similarity descending, then
// original retrieval order.
func Rerank(query string, candidates []domain.RetrievalCandidate, topN int, weights RerankWeights) []domain.RankedCandidate {
	queryTokens := strings.Fields(strings.ToLower(query))

	ranked := make([]domain.RankedCandidate, len(candidates))
	for i, candidate := range candidates {
		keyword := keywordScore(queryTokens, candidate.Chunk.Text)

		final := candidate.Similarity * weights.Similarity
		if len(queryTokens) > 0 {
			final += float64(keyword) / float64(len(queryTokens)) * weights.Keyword
		}

		ranked[i] = domain.RankedCandidate{
			RetrievalCandidate: candidate,
			KeywordScore:       keyword,
			FinalScore:         final,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].FinalScore != ranked[j].FinalScore {
			return ranked[i].FinalScore > ranked[j].FinalScore
		}
		return ranked[i].Similarity > ranked[j].Similarity
	})

	if topN >= 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}

// keywordScore counts query tokens contained as substrings in any token of
// the chunk text.
func keywordScore(queryTokens []string, chunkText string) int {
	chunkTokens := strings.Fields(strings.ToLower(chunkText))

	score := 0
	for _, queryToken := range queryTokens {
		for _, chunkToken := range chunkTokens {
			if strings.Contains(chunkToken, queryToken) {
				score++
				break
			}
		}
	}
	return score
}
