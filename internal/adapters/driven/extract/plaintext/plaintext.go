// Package plaintext passes through text files unchanged apart from
// normalising line endings and validating UTF-8.
package plaintext

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/docq/internal/core/domain"
	"github.com/custodia-labs/docq/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles plain text and markdown files.
type Extractor struct{}

// NewExtractor creates a plain text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract validates and normalises the raw bytes as UTF-8 text.
func (e *Extractor) Extract(_ context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: plaintext: empty input", domain.ErrExtraction)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: plaintext: input is not valid UTF-8", domain.ErrExtraction)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: plaintext: input contains no text", domain.ErrExtraction)
	}
	return text, nil
}

// SupportedExtensions lists the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".txt", ".md"}
}
