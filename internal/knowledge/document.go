package knowledge

// Metadata describes a stored document for filtering and citation.
type Metadata struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Language string   `json:"language"`
	Source   string   `json:"source,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Document is a knowledge snippet with its embedding vector. The embedding
// length always equals the embedding model's output dimensionality.
type Document struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Embedding []float32 `json:"-"`
	Metadata  Metadata  `json:"metadata"`
}

// SearchResult is a ranked retrieval hit. Score is cosine similarity clamped
// to [0,1].
type SearchResult struct {
	Content  string   `json:"content"`
	Score    float64  `json:"score"`
	Metadata Metadata `json:"metadata"`
}

// Filters narrows a search to a category and/or language. Empty fields match
// everything.
type Filters struct {
	Category string
	Language string
}
