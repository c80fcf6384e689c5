package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danoh/steptutor/internal/api"
	"github.com/danoh/steptutor/internal/config"
	"github.com/danoh/steptutor/internal/docstore"
	"github.com/danoh/steptutor/internal/llm"
	"github.com/danoh/steptutor/internal/ragchat"
	"github.com/danoh/steptutor/internal/retrieval"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe loads configuration, wires the dependencies, and serves HTTP
// until an interrupt or SIGTERM arrives.
func runServe(cmd *cobra.Command) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := docstore.EnsureDir(p); err != nil {
			return fmt.Errorf("create database dir: %w", err)
		}
		cfg.DBPath = p
	}

	slog.Info("starting server", "port", cfg.Port, "db", cfg.DBPath, "provider", cfg.LLM.Provider)

	st, err := docstore.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	blobs, err := docstore.NewBlobStore(cfg.BlobDir, cfg.FilesPrefix)
	if err != nil {
		return fmt.Errorf("open blob store: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProvider(ctx, cfg.LLM, st.Events())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	embedder, err := retrieval.NewOpenAIEmbedder(cfg.LLM.OpenAI.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("configure embedder: %w", err)
	}

	ingestor := &retrieval.Ingestor{
		Extractor: retrieval.PlainTextExtractor{},
		Chunker:   retrieval.NewChunker(),
		Embedder:  embedder,
		PDFs:      st.PDFs(),
		Chunks:    st.Chunks(),
		Log:       logger,
	}

	chat := &ragchat.Chat{
		Provider:  provider,
		Retriever: &retrieval.Searcher{Embedder: embedder, Chunks: st.Chunks()},
		PDFs:      st.PDFs(),
		Log:       logger,
	}

	handler := api.NewHandler(st, blobs, ingestor, chat, provider, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	stop()

	slog.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
