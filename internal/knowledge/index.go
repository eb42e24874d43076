package knowledge

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"swasthya-sahayak/internal/ai"
)

// Index is an in-memory brute-force cosine-similarity store. It is injected
// into whatever needs retrieval so tests can build isolated instances and a
// persistent backend can be substituted later.
//
// Reads and writes are guarded by an RWMutex, but a query issued while a
// seeding batch is in flight may see a partial corpus. That is acceptable:
// retrieval here is best-effort, not transactional.
type Index struct {
	mu        sync.RWMutex
	embedder  ai.Embedder
	vectorDim int
	docs      []Document
}

// NewIndex builds an empty index over the given embedder. vectorDim is the
// embedding model's output dimensionality; every stored vector must match it.
// Zero disables the check.
func NewIndex(embedder ai.Embedder, vectorDim int) *Index {
	return &Index{embedder: embedder, vectorDim: vectorDim}
}

func (idx *Index) checkDim(id string, vector []float32) error {
	if idx.vectorDim > 0 && len(vector) != idx.vectorDim {
		return fmt.Errorf("document %s: embedding length %d, index expects %d", id, len(vector), idx.vectorDim)
	}
	return nil
}

// Add embeds content and stores it. An existing document with the same id is
// replaced.
func (idx *Index) Add(ctx context.Context, id, content string, meta Metadata) error {
	vector, err := idx.embedder.Embed(ctx, content)
	if err != nil {
		return fmt.Errorf("embed document %s: %w", id, err)
	}
	if err := idx.checkDim(id, vector); err != nil {
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.removeLocked(id)
	idx.docs = append(idx.docs, Document{ID: id, Content: content, Embedding: vector, Metadata: meta})
	return nil
}

// AddBatch embeds all documents in one batched call.
func (idx *Index) AddBatch(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectors, err := idx.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed batch: %w", err)
	}

	for i, doc := range docs {
		if err := idx.checkDim(doc.ID, vectors[i]); err != nil {
			return err
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	for i, doc := range docs {
		doc.Embedding = vectors[i]
		idx.removeLocked(doc.ID)
		idx.docs = append(idx.docs, doc)
	}
	return nil
}

// Search embeds the query and returns at most topK documents sorted by
// descending cosine similarity, optionally pre-filtered by category/language.
func (idx *Index) Search(ctx context.Context, query string, topK int, filters Filters) ([]SearchResult, error) {
	if topK <= 0 {
		topK = 3
	}

	queryVector, err := idx.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	results := make([]SearchResult, 0, len(idx.docs))
	for _, doc := range idx.docs {
		if filters.Category != "" && !strings.EqualFold(doc.Metadata.Category, filters.Category) {
			continue
		}
		if filters.Language != "" && !strings.EqualFold(doc.Metadata.Language, filters.Language) {
			continue
		}
		score := CosineSimilarity(queryVector, doc.Embedding)
		if score < 0 {
			score = 0
		}
		results = append(results, SearchResult{Content: doc.Content, Score: score, Metadata: doc.Metadata})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// Delete removes a document by id. Deleting an unknown id is a no-op.
func (idx *Index) Delete(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.removeLocked(id)
}

// Clear drops every stored document.
func (idx *Index) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.docs = nil
}

// Stats returns the number of stored documents.
func (idx *Index) Stats() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docs)
}

func (idx *Index) removeLocked(id string) {
	for i, doc := range idx.docs {
		if doc.ID == id {
			idx.docs = append(idx.docs[:i], idx.docs[i+1:]...)
			return
		}
	}
}

// CosineSimilarity returns dot(a,b)/(|a|*|b|), or 0 when either norm is 0.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
