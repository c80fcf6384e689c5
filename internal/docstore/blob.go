package docstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
)

// BlobStore persists uploaded files on local disk and issues public URL
// paths for them. Files are stored under their content digest so the
// same upload never occupies disk twice.
type BlobStore struct {
	dir       string
	urlPrefix string
}

// NewBlobStore creates a BlobStore rooted at dir. urlPrefix is the URL
// path the HTTP layer serves the directory under (e.g. "/files").
// The directory is created if missing; an unwritable directory fails here.
func NewBlobStore(dir, urlPrefix string) (*BlobStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("blob directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &BlobStore{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// Dir returns the directory files are stored in.
func (b *BlobStore) Dir() string {
	return b.dir
}

// Save writes the content to disk and returns (publicURL, hexDigest).
// The stored name is <digest>-<sanitized filename>.
func (b *BlobStore) Save(filename string, r io.Reader) (string, string, error) {
	tmp, err := os.CreateTemp(b.dir, "upload-*")
	if err != nil {
		return "", "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	hasher := blake3.New()
	if _, err := io.Copy(io.MultiWriter(tmp, hasher), r); err != nil {
		tmp.Close()
		return "", "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", "", fmt.Errorf("close temp file: %w", err)
	}

	digest := fmt.Sprintf("%x", hasher.Sum(nil))
	name := digest + "-" + sanitizeFilename(filename)
	final := filepath.Join(b.dir, name)

	if _, err := os.Stat(final); os.IsNotExist(err) {
		if err := os.Rename(tmp.Name(), final); err != nil {
			return "", "", fmt.Errorf("store upload: %w", err)
		}
	}

	return b.urlPrefix + "/" + name, digest, nil
}

// Open returns the stored payload for a previously saved upload.
func (b *BlobStore) Open(digest, filename string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(b.dir, digest+"-"+sanitizeFilename(filename)))
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

// Digest computes the BLAKE3 hex digest of r without storing anything.
func Digest(r io.Reader) (string, error) {
	hasher := blake3.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", fmt.Errorf("hash content: %w", err)
	}
	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// sanitizeFilename keeps the stored name shell- and URL-safe.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
