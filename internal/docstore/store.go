package docstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/danoh/steptutor/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// sessionPragmas tune SQLite for a small single-node deployment.
var sessionPragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

// Store holds the ent client and provides access to repositories.
// It is constructed explicitly and injected; a missing or unopenable
// database fails here, not on first query.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies the session pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, p := range sessionPragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Folders returns a FolderRepo backed by this store.
func (s *Store) Folders() FolderRepo {
	return &folderRepo{client: s.client}
}

// PDFs returns a PDFRepo backed by this store.
func (s *Store) PDFs() PDFRepo {
	return &pdfRepo{client: s.client}
}

// Chunks returns a ChunkRepo backed by this store.
func (s *Store) Chunks() ChunkRepo {
	return &chunkRepo{client: s.client}
}

// Questions returns a QuestionRepo backed by this store.
func (s *Store) Questions() QuestionRepo {
	return &questionRepo{client: s.client}
}

// Events returns an EventRepo backed by this store.
func (s *Store) Events() EventRepo {
	return &eventRepo{client: s.client}
}

// DefaultDBPath resolves the database file path. The STEPTUTOR_DB
// environment variable wins; otherwise the file lives under
// $XDG_DATA_HOME/steptutor (or ~/.local/share/steptutor).
func DefaultDBPath() (string, error) {
	if p := os.Getenv("STEPTUTOR_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "steptutor", "steptutor.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
