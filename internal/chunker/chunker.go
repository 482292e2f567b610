// Package chunker splits document text into overlapping, bounded-size
// passages suitable for embedding. Chunking is deterministic and pure.
package chunker

import (
	"regexp"
	"strings"
)

// DefaultMaxChunkSize is the default chunk size bound in characters.
const DefaultMaxChunkSize = 1000

// DefaultOverlapBudget is the default overlap budget in characters. The
// budget is converted to a word count via overlapWordDivisor rather than
// applied as an exact character overlap.
const DefaultOverlapBudget = 200

// overlapWordDivisor converts the overlap budget into a number of
// whitespace-delimited words carried over into the next chunk.
const overlapWordDivisor = 10

// minChunkLength is the floor below which emitted chunks are discarded,
// guarding against near-empty fragments.
const minChunkLength = 50

// sentenceSplitter splits text on runs of terminal punctuation. The
// terminators themselves are consumed.
var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// Chunker accumulates sentence-like units into chunks, seeding each new
// chunk with the tail words of the previous one.
type Chunker struct {
	maxChunkSize  int
	overlapBudget int
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithMaxChunkSize sets the chunk size bound in characters.
func WithMaxChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.maxChunkSize = size
		}
	}
}

// WithOverlapBudget sets the overlap budget in characters.
func WithOverlapBudget(budget int) Option {
	return func(c *Chunker) {
		if budget >= 0 {
			c.overlapBudget = budget
		}
	}
}

// New creates a Chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		maxChunkSize:  DefaultMaxChunkSize,
		overlapBudget: DefaultOverlapBudget,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chunk splits text into chunks. A chunk closes when adding the next
// sentence would exceed the size bound; the running size is the sum of
// sentence lengths added since the chunk began, except that an overlap
// seed restarts the count at the seeded chunk's full length. A single
// sentence longer than the bound still lands in exactly one chunk.
func (c *Chunker) Chunk(text string) []string {
	units := sentenceSplitter.Split(text, -1)

	var chunks []string
	current := ""
	size := 0

	for _, unit := range units {
		unit = strings.TrimSpace(unit)
		if unit == "" {
			continue
		}

		if size+len(unit) > c.maxChunkSize && current != "" {
			closed := strings.TrimSpace(current)
			chunks = append(chunks, closed)

			current = c.overlapSeed(closed) + " " + unit
			size = len(current)
		} else {
			current += " " + unit
			size += len(unit)
		}
	}

	if trailing := strings.TrimSpace(current); trailing != "" {
		chunks = append(chunks, trailing)
	}

	kept := chunks[:0]
	for _, chunk := range chunks {
		if len(chunk) > minChunkLength {
			kept = append(kept, chunk)
		}
	}
	return kept
}

// overlapSeed returns the last overlapBudget/overlapWordDivisor
// whitespace-delimited words of the closed chunk.
func (c *Chunker) overlapSeed(closed string) string {
	words := strings.Split(closed, " ")
	n := c.overlapBudget / overlapWordDivisor
	if n > len(words) {
		n = len(words)
	}
	return strings.Join(words[len(words)-n:], " ")
}
