// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/danoh/steptutor/internal/docstore"
	"github.com/danoh/steptutor/internal/llm"
)

// Config holds all server configuration.
type Config struct {
	Port string

	// DBPath is the SQLite database file.
	DBPath string

	// BlobDir holds uploaded document payloads.
	BlobDir string

	// FilesPrefix is the public URL prefix the blob dir is served under.
	FilesPrefix string

	// EmbeddingModel overrides the default embedding model.
	EmbeddingModel string

	LLM llm.Config
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dbPath := os.Getenv("STEPTUTOR_DB")
	if dbPath == "" {
		var err error
		dbPath, err = docstore.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	} else if err := docstore.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBPath:         dbPath,
		BlobDir:        getEnv("STEPTUTOR_BLOB_DIR", "./data/blobs"),
		FilesPrefix:    getEnv("STEPTUTOR_FILES_PREFIX", "/files"),
		EmbeddingModel: getEnv("STEPTUTOR_EMBEDDING_MODEL", ""),
		LLM:            llm.ConfigFromEnv(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("STEPTUTOR_DB cannot be empty")
	}
	if c.BlobDir == "" {
		return fmt.Errorf("STEPTUTOR_BLOB_DIR cannot be empty")
	}
	if !strings.HasPrefix(c.FilesPrefix, "/") {
		return fmt.Errorf("STEPTUTOR_FILES_PREFIX must start with /")
	}
	return c.LLM.Validate()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
