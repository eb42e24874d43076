package knowledge

import (
	"context"
	"math"
	"testing"
)

// stubEmbedder returns canned vectors keyed by text so tests are deterministic
// and need no network.
type stubEmbedder struct {
	vectors map[string][]float32
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 0}, nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, _ := s.Embed(ctx, t)
		out[i] = v
	}
	return out, nil
}

func TestCosineSimilaritySelf(t *testing.T) {
	v := []float32{0.3, 0.5, 0.81, 0.02}
	got := CosineSimilarity(v, v)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("self similarity = %v, want ~1.0", got)
	}
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	if got := CosineSimilarity([]float32{0, 0}, []float32{1, 2}); got != 0 {
		t.Fatalf("zero-norm similarity = %v, want 0", got)
	}
}

func TestSearchRankingAndTopK(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{
		"malaria mosquito fever": {1, 0, 0},
		"dengue mosquito rash":   {0.9, 0.1, 0},
		"child vaccine schedule": {0, 0, 1},
		"mosquito diseases fever": {1, 0.05, 0},
	}}
	idx := NewIndex(emb, 3)

	docs := []Document{
		{ID: "malaria", Content: "malaria mosquito fever", Metadata: Metadata{Category: "disease", Language: "en"}},
		{ID: "dengue", Content: "dengue mosquito rash", Metadata: Metadata{Category: "disease", Language: "en"}},
		{ID: "vaccine", Content: "child vaccine schedule", Metadata: Metadata{Category: "immunization", Language: "en"}},
	}
	if err := idx.AddBatch(context.Background(), docs); err != nil {
		t.Fatalf("AddBatch: %v", err)
	}

	results, err := idx.Search(context.Background(), "mosquito diseases fever", 2, Filters{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted descending: %v", results)
		}
	}
	for _, r := range results {
		if r.Content == "child vaccine schedule" {
			t.Fatalf("vaccine doc ranked in top 2 over mosquito docs")
		}
	}
}

func TestSearchFilters(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{
		"doc a": {1, 0},
		"doc b": {1, 0},
		"query": {1, 0},
	}}
	idx := NewIndex(emb, 2)
	docs := []Document{
		{ID: "a", Content: "doc a", Metadata: Metadata{Category: "maternal", Language: "en"}},
		{ID: "b", Content: "doc b", Metadata: Metadata{Category: "disease", Language: "hi"}},
	}
	if err := idx.AddBatch(context.Background(), docs); err != nil {
		t.Fatalf("AddBatch: %v", err)
	}

	results, err := idx.Search(context.Background(), "query", 10, Filters{Category: "maternal"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Content != "doc a" {
		t.Fatalf("category filter failed: %v", results)
	}

	results, err = idx.Search(context.Background(), "query", 10, Filters{Language: "hi"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Content != "doc b" {
		t.Fatalf("language filter failed: %v", results)
	}
}

func TestAddReplaceDeleteStats(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{
		"first":  {1, 0},
		"second": {0, 1},
	}}
	idx := NewIndex(emb, 2)

	if err := idx.Add(context.Background(), "doc", "first", Metadata{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := idx.Add(context.Background(), "doc", "second", Metadata{}); err != nil {
		t.Fatalf("Add replace: %v", err)
	}
	if got := idx.Stats(); got != 1 {
		t.Fatalf("Stats after replace = %d, want 1", got)
	}

	idx.Delete("doc")
	if got := idx.Stats(); got != 0 {
		t.Fatalf("Stats after delete = %d, want 0", got)
	}

	// Deleting an unknown id is a no-op
	idx.Delete("missing")

	if err := idx.Add(context.Background(), "doc", "first", Metadata{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	idx.Clear()
	if got := idx.Stats(); got != 0 {
		t.Fatalf("Stats after clear = %d, want 0", got)
	}
}

func TestAddRejectsDimensionMismatch(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{
		"short vector doc": {1, 0},
	}}
	idx := NewIndex(emb, 3)

	if err := idx.Add(context.Background(), "bad", "short vector doc", Metadata{}); err == nil {
		t.Fatalf("Add accepted a 2-dim embedding into a 3-dim index")
	}
	if idx.Stats() != 0 {
		t.Fatalf("mismatched document was stored, count = %d", idx.Stats())
	}

	err := idx.AddBatch(context.Background(), []Document{
		{ID: "bad-batch", Content: "short vector doc"},
	})
	if err == nil {
		t.Fatalf("AddBatch accepted a 2-dim embedding into a 3-dim index")
	}
	if idx.Stats() != 0 {
		t.Fatalf("mismatched batch document was stored, count = %d", idx.Stats())
	}
}
