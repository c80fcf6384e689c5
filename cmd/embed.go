package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danoh/steptutor/internal/config"
	"github.com/danoh/steptutor/internal/docstore"
	"github.com/danoh/steptutor/internal/retrieval"
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Re-run the embedding pipeline for unprocessed documents",
	Long:  "Embed finds documents whose processing is pending or failed and runs extraction, chunking, and embedding for each.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			slog.Info("no .env file found, using environment variables")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		if p, _ := cmd.Flags().GetString("db"); p != "" {
			cfg.DBPath = p
		}

		st, err := docstore.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		blobs, err := docstore.NewBlobStore(cfg.BlobDir, cfg.FilesPrefix)
		if err != nil {
			return fmt.Errorf("open blob store: %w", err)
		}

		embedder, err := retrieval.NewOpenAIEmbedder(cfg.LLM.OpenAI.APIKey, cfg.EmbeddingModel)
		if err != nil {
			return fmt.Errorf("configure embedder: %w", err)
		}

		ing := &retrieval.Ingestor{
			Extractor: retrieval.PlainTextExtractor{},
			Chunker:   retrieval.NewChunker(),
			Embedder:  embedder,
			PDFs:      st.PDFs(),
			Chunks:    st.Chunks(),
		}

		ctx := cmd.Context()
		var pending []*docstore.PDF
		for _, status := range []docstore.RagStatus{docstore.RagPending, docstore.RagFailed} {
			list, err := st.PDFs().ListByStatus(ctx, status)
			if err != nil {
				return fmt.Errorf("list %s documents: %w", status, err)
			}
			pending = append(pending, list...)
		}
		if len(pending) == 0 {
			fmt.Println("All documents are processed.")
			return nil
		}

		var failed int
		for _, pdf := range pending {
			fmt.Printf("Processing %s (%s)...\n", pdf.Filename, pdf.ID)
			payload, err := blobs.Open(pdf.Digest, pdf.Filename)
			if err != nil {
				fmt.Fprintf(os.Stderr, "  skipped: %v\n", err)
				failed++
				continue
			}
			err = ing.Ingest(ctx, pdf, payload)
			payload.Close()
			if err != nil {
				fmt.Fprintf(os.Stderr, "  failed: %v\n", err)
				failed++
			}
		}

		fmt.Printf("Processed %d documents, %d failed.\n", len(pending)-failed, failed)
		if failed > 0 {
			return fmt.Errorf("%d documents failed", failed)
		}
		return nil
	},
}
