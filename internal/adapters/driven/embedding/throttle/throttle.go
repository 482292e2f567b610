// Package throttle rate-limits an embedding service so batch ingestion
// stays inside provider quotas.
package throttle

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/docq/internal/core/ports/driven"
)

// Ensure Throttled implements the interface.
var _ driven.EmbeddingService = (*Throttled)(nil)

// DefaultInterval is the minimum spacing between embedding requests.
const DefaultInterval = 100 * time.Millisecond

// Throttled wraps an EmbeddingService and spaces out its requests using a
// token-bucket limiter. Batches are split into per-text requests so each
// one is individually paced.
type Throttled struct {
	inner   driven.EmbeddingService
	limiter *rate.Limiter
}

// New wraps inner with the given minimum interval between requests. A
// non-positive interval falls back to DefaultInterval.
func New(inner driven.EmbeddingService, interval time.Duration) *Throttled {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Throttled{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// NewWithLimiter wraps inner with a caller-supplied limiter. Tests use this
// with rate.NewLimiter(rate.Inf, 0) to disable pacing.
func NewWithLimiter(inner driven.EmbeddingService, limiter *rate.Limiter) *Throttled {
	return &Throttled{inner: inner, limiter: limiter}
}

// Embed waits for the limiter, then delegates.
func (t *Throttled) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("throttle: %w", err)
	}
	return t.inner.Embed(ctx, text)
}

// EmbedBatch embeds each text sequentially, pacing every request. Order of
// the results matches the input order.
func (t *Throttled) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := t.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embed text %d of %d: %w", i+1, len(texts), err)
		}
		embeddings[i] = vector
	}
	return embeddings, nil
}

// Dimensions returns the wrapped service's vector size.
func (t *Throttled) Dimensions() int {
	return t.inner.Dimensions()
}

// ModelName returns the wrapped service's model name.
func (t *Throttled) ModelName() string {
	return t.inner.ModelName()
}

// Ping delegates to the wrapped service without consuming a token.
func (t *Throttled) Ping(ctx context.Context) error {
	return t.inner.Ping(ctx)
}

// Close closes the wrapped service.
func (t *Throttled) Close() error {
	return t.inner.Close()
}
