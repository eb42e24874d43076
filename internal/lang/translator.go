package lang

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"swasthya-sahayak/internal/ai"
	"swasthya-sahayak/internal/logger"
)

const batchDelimiter = "|||"

// Translator converts text between supported languages via Gemini. Every
// failure degrades to the original text; the caller never sees an error.
type Translator struct {
	generator ai.TextGenerator
}

func NewTranslator(generator ai.TextGenerator) *Translator {
	return &Translator{generator: generator}
}

// Translate returns text in the target language. It is a no-op when source
// equals target, and when the target is English and the text is already
// ASCII-only.
func (t *Translator) Translate(ctx context.Context, text, target, source string) string {
	if text == "" || target == source {
		return text
	}
	if target == English && IsASCII(text) {
		return text
	}

	system := fmt.Sprintf(
		"Translate the user text into %s. Use simple everyday vocabulary a rural reader understands. "+
			"Preserve the tone. Do not add or remove information. Respond with only the translation.",
		Names[target])

	translated, err := t.generator.GenerateText(ctx, system, text)
	if err != nil {
		logger.Warn("translation failed, returning original text", "target", target, "error", err)
		return text
	}
	return strings.TrimSpace(translated)
}

// TranslateBatch translates several items. Up to three items are translated
// individually; larger batches are combined into one indexed,
// delimiter-separated request. The combined response is parsed with an
// explicit index and count check, and any mismatch falls back to per-item
// translation rather than silently misaligning items.
func (t *Translator) TranslateBatch(ctx context.Context, texts []string, target, source string) []string {
	if len(texts) <= 3 {
		out := make([]string, len(texts))
		for i, text := range texts {
			out[i] = t.Translate(ctx, text, target, source)
		}
		return out
	}

	if target == source {
		out := make([]string, len(texts))
		copy(out, texts)
		return out
	}

	var sb strings.Builder
	for i, text := range texts {
		if i > 0 {
			sb.WriteString("\n" + batchDelimiter + "\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, text))
	}

	system := fmt.Sprintf(
		"Translate each numbered item into %s. Use simple everyday vocabulary, preserve tone, "+
			"and do not add or remove information. Keep the same numbering and separate items with %s exactly as in the input.",
		Names[target], batchDelimiter)

	response, err := t.generator.GenerateText(ctx, system, sb.String())
	if err != nil {
		logger.Warn("batch translation failed, falling back to per-item", "target", target, "error", err)
		return t.translateEach(ctx, texts, target, source)
	}

	parsed, ok := parseBatchResponse(response, len(texts))
	if !ok {
		logger.Warn("batch translation response misaligned, falling back to per-item",
			"target", target, "expected", len(texts))
		return t.translateEach(ctx, texts, target, source)
	}
	return parsed
}

func (t *Translator) translateEach(ctx context.Context, texts []string, target, source string) []string {
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = t.Translate(ctx, text, target, source)
	}
	return out
}

// parseBatchResponse splits the model output on the delimiter and strips the
// "N." index prefix from each segment, verifying both the segment count and
// every index.
func parseBatchResponse(response string, want int) ([]string, bool) {
	segments := strings.Split(response, batchDelimiter)
	if len(segments) != want {
		return nil, false
	}

	out := make([]string, want)
	for i, segment := range segments {
		segment = strings.TrimSpace(segment)
		dot := strings.Index(segment, ".")
		if dot <= 0 {
			return nil, false
		}
		index, err := strconv.Atoi(strings.TrimSpace(segment[:dot]))
		if err != nil || index != i+1 {
			return nil, false
		}
		out[i] = strings.TrimSpace(segment[dot+1:])
	}
	return out, true
}
