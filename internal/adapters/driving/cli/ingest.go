package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docq/internal/adapters/driven/extract/pdf"
	"github.com/custodia-labs/docq/internal/adapters/driven/extract/plaintext"
	"github.com/custodia-labs/docq/internal/core/ports/driven"
)

var ingestName string

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a document into the corpus",
	Long: `Extracts text from the given file, splits it into chunks, embeds
each chunk, and stores everything for later questions.

Supported formats: PDF (.pdf), plain text (.txt), markdown (.md).`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestName, "name", "", "store the document under this name instead of the filename")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	extractor, err := extractorFor(path)
	if err != nil {
		return err
	}

	text, err := extractor.Extract(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("extracting text from %s: %w", path, err)
	}

	name := ingestName
	if name == "" {
		name = filepath.Base(path)
	}

	receipt, err := ingestService.Ingest(cmd.Context(), text, name)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %s: document %s, %d chunks\n", name, receipt.DocumentID, receipt.ChunkCount)
	return nil
}

// extractorFor picks a text extractor by file extension.
func extractorFor(path string) (driven.TextExtractor, error) {
	ext := strings.ToLower(filepath.Ext(path))

	for _, extractor := range []driven.TextExtractor{pdf.NewExtractor(), plaintext.NewExtractor()} {
		for _, supported := range extractor.SupportedExtensions() {
			if ext == supported {
				return extractor, nil
			}
		}
	}
	return nil, fmt.Errorf("unsupported file type %q (supported: .pdf, .txt, .md)", ext)
}
