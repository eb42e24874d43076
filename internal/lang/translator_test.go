package lang

import (
	"context"
	"errors"
	"testing"
)

func TestTranslateNoOps(t *testing.T) {
	gen := &stubGenerator{err: errors.New("should not be called")}
	tr := NewTranslator(gen)

	if got := tr.Translate(context.Background(), "hello", Hindi, Hindi); got != "hello" {
		t.Fatalf("same-language translate changed text: %q", got)
	}
	if got := tr.Translate(context.Background(), "plain ascii text", English, Hindi); got != "plain ascii text" {
		t.Fatalf("ascii-to-english translate changed text: %q", got)
	}
	if gen.calls != 0 {
		t.Fatalf("generator called %d times for no-op translations", gen.calls)
	}
}

func TestTranslateFailureReturnsOriginal(t *testing.T) {
	tr := NewTranslator(&stubGenerator{err: errors.New("network down")})
	if got := tr.Translate(context.Background(), "hello", Hindi, English); got != "hello" {
		t.Fatalf("failed translation should return original, got %q", got)
	}
}

func TestTranslateBatchSmallGoesPerItem(t *testing.T) {
	gen := &stubGenerator{response: "नमस्ते"}
	tr := NewTranslator(gen)

	out := tr.TranslateBatch(context.Background(), []string{"hello", "bye", "thanks"}, Hindi, English)
	if len(out) != 3 {
		t.Fatalf("got %d items, want 3", len(out))
	}
	if gen.calls != 3 {
		t.Fatalf("generator called %d times, want 3 (per-item for small batches)", gen.calls)
	}
}

func TestTranslateBatchCombined(t *testing.T) {
	gen := &stubGenerator{response: "1. एक\n|||\n2. दो\n|||\n3. तीन\n|||\n4. चार"}
	tr := NewTranslator(gen)

	out := tr.TranslateBatch(context.Background(), []string{"one", "two", "three", "four"}, Hindi, English)
	want := []string{"एक", "दो", "तीन", "चार"}
	if len(out) != len(want) {
		t.Fatalf("got %d items, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("item %d = %q, want %q", i, out[i], want[i])
		}
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1 combined call", gen.calls)
	}
}

func TestTranslateBatchCountMismatchFallsBack(t *testing.T) {
	// First call returns fewer segments than sent; fallback re-translates each
	// item individually.
	gen := &stubGenerator{response: "1. एक\n|||\n2. दो"}
	tr := NewTranslator(gen)

	out := tr.TranslateBatch(context.Background(), []string{"one", "two", "three", "four"}, Hindi, English)
	if len(out) != 4 {
		t.Fatalf("got %d items, want 4", len(out))
	}
	// 1 combined attempt + 4 per-item fallbacks
	if gen.calls != 5 {
		t.Fatalf("generator called %d times, want 5", gen.calls)
	}
}

func TestParseBatchResponseIndexMismatch(t *testing.T) {
	if _, ok := parseBatchResponse("1. a\n|||\n3. b", 2); ok {
		t.Fatalf("index mismatch should fail parsing")
	}
	if _, ok := parseBatchResponse("no index here\n|||\nalso none", 2); ok {
		t.Fatalf("missing index prefix should fail parsing")
	}
	out, ok := parseBatchResponse("1. a\n|||\n2. b", 2)
	if !ok || out[0] != "a" || out[1] != "b" {
		t.Fatalf("valid response failed to parse: %v %v", out, ok)
	}
}
