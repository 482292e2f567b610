package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/docq/internal/core/domain"
	"github.com/custodia-labs/docq/internal/core/ports/driven"
)

// DefaultMaxAnswerTokens bounds the length of a synthesized answer.
const DefaultMaxAnswerTokens = 1000

// answerPromptFormat constrains the model to the supplied context. The
// first argument is the context block, the second the question.
const answerPromptFormat = `Based on the following document chunks, please answer the question accurately and concisely.

Context:
%s

Question: %s

Instructions:
- Only use information provided in the context chunks
- If the answer cannot be found in the context, say "I cannot find this information in the provided document"
- Be specific and include relevant numbers, dates, or details when available
- Keep the answer concise but complete

Answer:`

// buildContext concatenates the ranked chunk texts, each labelled with its
// 1-based position, separated by blank lines.
func buildContext(ranked []domain.RankedCandidate) string {
	parts := make([]string, len(ranked))
	for i, candidate := range ranked {
		parts[i] = fmt.Sprintf("[Chunk %d]: %s", i+1, candidate.Chunk.Text)
	}
	return strings.Join(parts, "\n\n")
}

// synthesize asks the generation capability to answer strictly from the
// ranked chunks. Empty output is a generation failure, not an answer.
func synthesize(ctx context.Context, llm driven.LLMService, query string, ranked []domain.RankedCandidate, maxTokens int) (string, error) {
	prompt := fmt.Sprintf(answerPromptFormat, buildContext(ranked), query)

	answer, err := llm.Generate(ctx, prompt, driven.GenerateOptions{MaxTokens: maxTokens})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}
	if strings.TrimSpace(answer) == "" {
		return "", fmt.Errorf("%w: model returned empty output", domain.ErrGeneration)
	}
	return answer, nil
}
