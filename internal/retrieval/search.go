package retrieval

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/docstore"
)

// Match is one chunk scored against a query vector.
type Match struct {
	Chunk      *docstore.Chunk
	Similarity float64
}

// CosineSimilarity returns the cosine of the angle between a and b.
// Mismatched lengths and zero vectors score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// TopMatches scores every chunk against the query vector and returns
// the k best, highest similarity first.
func TopMatches(query []float32, chunks []*docstore.Chunk, k int) []Match {
	matches := make([]Match, 0, len(chunks))
	for _, ch := range chunks {
		matches = append(matches, Match{
			Chunk:      ch,
			Similarity: CosineSimilarity(query, ch.Embedding),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// Searcher answers similarity queries over the chunks of a PDF set.
type Searcher struct {
	Embedder Embedder
	Chunks   docstore.ChunkRepo
}

// Search embeds the query and returns the k most similar chunks among
// the given PDFs, highest similarity first.
func (s *Searcher) Search(ctx context.Context, query string, pdfIDs []uuid.UUID, k int) ([]Match, error) {
	vecs, err := s.Embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("embed query: got %d vectors", len(vecs))
	}

	chunks, err := s.Chunks.ListByPDFs(ctx, pdfIDs)
	if err != nil {
		return nil, fmt.Errorf("load chunks: %w", err)
	}

	return TopMatches(vecs[0], chunks, k), nil
}
