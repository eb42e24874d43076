package ai

import "context"

// TextGenerator is the short-text generation dependency used by the language
// detector fallback and the translator.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// Embedder converts text into fixed-length vectors, singly or batched.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
