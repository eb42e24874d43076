package lang

import (
	"context"
	"strings"

	"swasthya-sahayak/internal/ai"
	"swasthya-sahayak/internal/logger"
)

// Supported language codes.
const (
	English = "en"
	Hindi   = "hi"
	Marathi = "mr"
	Punjabi = "pa"
)

// Supported lists every language the assistant handles.
var Supported = []string{English, Hindi, Marathi, Punjabi}

// IsSupported reports whether code names one of the four assistant languages.
func IsSupported(code string) bool {
	for _, s := range Supported {
		if code == s {
			return true
		}
	}
	return false
}

// Names maps codes to the names used in model prompts.
var Names = map[string]string{
	English: "English",
	Hindi:   "Hindi",
	Marathi: "Marathi",
	Punjabi: "Punjabi",
}

// Marathi-only marker words. Hindi and Marathi share the Devanagari script, so
// script range alone cannot separate them.
var marathiMarkers = []string{
	"तुम्ही", "आहात", "आहे", "मला", "काय", "कसे", "तुमचे", "माझे", "नाही", "होय",
}

// strategy returns a language code and true on a confident hit.
type strategy func(ctx context.Context, text string) (string, bool)

// Detector classifies text into one of the four supported languages using a
// cheap heuristic cascade with a model-based fallback. The first strategy
// that answers wins.
type Detector struct {
	chain []strategy
}

func NewDetector(generator ai.TextGenerator) *Detector {
	d := &Detector{}
	d.chain = []strategy{
		detectGurmukhi,
		detectDevanagari,
		detectASCII,
		modelFallback(generator),
	}
	return d
}

// Detect never fails; every input maps to one of {en, hi, mr, pa}.
func (d *Detector) Detect(ctx context.Context, text string) string {
	for _, s := range d.chain {
		if code, ok := s(ctx, text); ok {
			return code
		}
	}
	return English
}

func detectGurmukhi(_ context.Context, text string) (string, bool) {
	for _, r := range text {
		if r >= 0x0A00 && r <= 0x0A7F {
			return Punjabi, true
		}
	}
	return "", false
}

func detectDevanagari(_ context.Context, text string) (string, bool) {
	hasDevanagari := false
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			hasDevanagari = true
			break
		}
	}
	if !hasDevanagari {
		return "", false
	}
	for _, marker := range marathiMarkers {
		if strings.Contains(text, marker) {
			return Marathi, true
		}
	}
	return Hindi, true
}

func detectASCII(_ context.Context, text string) (string, bool) {
	total := 0
	ascii := 0
	for _, r := range text {
		total++
		if r < 128 {
			ascii++
		}
	}
	if total == 0 {
		return English, true
	}
	if float64(ascii)/float64(total) > 0.8 {
		return English, true
	}
	return "", false
}

const detectSystemPrompt = "You are a language identification system. " +
	"Classify the user text into exactly one of these language codes: en (English), hi (Hindi), mr (Marathi), pa (Punjabi). " +
	"Respond with only the two-letter code, nothing else."

// modelFallback asks Gemini to pick one of the four closed labels. Any
// failure, including an unparseable answer, defaults to English.
func modelFallback(generator ai.TextGenerator) strategy {
	return func(ctx context.Context, text string) (string, bool) {
		if generator == nil {
			return English, true
		}
		answer, err := generator.GenerateText(ctx, detectSystemPrompt, text)
		if err != nil {
			logger.Warn("language detection fallback failed", "error", err)
			return English, true
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		for _, code := range Supported {
			if answer == code || strings.Contains(answer, code) {
				return code, true
			}
		}
		return English, true
	}
}

// IsASCII reports whether the text contains only ASCII characters.
func IsASCII(text string) bool {
	for _, r := range text {
		if r >= 128 {
			return false
		}
	}
	return true
}
