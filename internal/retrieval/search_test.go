package retrieval

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/docstore"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"mismatched length", []float32{1, 2}, []float32{1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopMatchesOrdersAndLimits(t *testing.T) {
	chunks := []*docstore.Chunk{
		{Index: 0, Embedding: []float32{1, 0}},
		{Index: 1, Embedding: []float32{0.9, 0.1}},
		{Index: 2, Embedding: []float32{0, 1}},
		{Index: 3, Embedding: []float32{0.5, 0.5}},
	}

	matches := TopMatches([]float32{1, 0}, chunks, 2)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Chunk.Index != 0 || matches[1].Chunk.Index != 1 {
		t.Errorf("order = [%d %d], want [0 1]", matches[0].Chunk.Index, matches[1].Chunk.Index)
	}
	if matches[0].Similarity < matches[1].Similarity {
		t.Error("matches not sorted by similarity")
	}
}

func TestSearcher(t *testing.T) {
	pdfID := uuid.New()
	repo := &fakeChunkRepo{chunks: []*docstore.Chunk{
		{PDFID: pdfID, Index: 0, Content: "미분의 정의", Embedding: []float32{1, 0}},
		{PDFID: pdfID, Index: 1, Content: "적분의 정의", Embedding: []float32{0, 1}},
	}}
	embed := EmbedderFunc(func(_ context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{1, 0}
		}
		return out, nil
	})

	s := &Searcher{Embedder: embed, Chunks: repo}
	matches, err := s.Search(context.Background(), "미분이 뭐야?", []uuid.UUID{pdfID}, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Chunk.Content != "미분의 정의" {
		t.Errorf("best match = %q", matches[0].Chunk.Content)
	}
	if matches[0].Similarity <= matches[1].Similarity {
		t.Error("expected the aligned chunk to score higher")
	}
}
