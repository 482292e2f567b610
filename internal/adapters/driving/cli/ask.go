package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docq/internal/core/domain"
)

var (
	askJSON       bool
	askShowChunks bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the ingested documents",
	Long: `Answers a natural-language question using the ingested documents.
Retrieves the most similar chunks by vector search, re-ranks them with
keyword overlap, and synthesizes an answer grounded in the winners.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the full result as JSON")
	askCmd.Flags().BoolVar(&askShowChunks, "show-chunks", false, "show the chunks the answer is based on")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	result, err := askService.Ask(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(result.Answer)

	if askShowChunks {
		printChunks(cmd, result.SelectedChunks)
	}
	return nil
}

func printChunks(cmd *cobra.Command, chunks []domain.RankedChunkView) {
	if len(chunks) == 0 {
		return
	}
	cmd.Println()
	cmd.Println("Sources:")
	for i, chunk := range chunks {
		cmd.Printf("  [%d] %s #%d (similarity %.4f, keyword %d, final %.4f)\n",
			i+1, chunk.Filename, chunk.ChunkIndex,
			chunk.SimilarityScore, chunk.KeywordScore, chunk.FinalScore)
		cmd.Printf("      %s\n", chunk.Text)
	}
}
