package models

import (
	"swasthya-sahayak/internal/knowledge"
	"swasthya-sahayak/internal/triage"
)

// AssistantRequest is one user turn entering the decision layer.
type AssistantRequest struct {
	Message  string `json:"message" binding:"required"`
	Role     string `json:"role"`
	Language string `json:"language"`
	Age      int    `json:"age"`
	Pregnant bool   `json:"is_pregnant"`
	Chronic  bool   `json:"has_chronic_condition"`
}

// AssistantResponse carries everything the agent orchestration layer needs to
// generate a reply: detected language, triage verdicts, retrieved knowledge
// and the composed operating brief.
type AssistantResponse struct {
	Language    string                   `json:"language"`
	IsEmergency bool                     `json:"is_emergency"`
	Emergency   *triage.Detection        `json:"emergency,omitempty"`
	Risk        *triage.RiskAssessment   `json:"risk,omitempty"`
	Knowledge   []knowledge.SearchResult `json:"knowledge"`
	Brief       string                   `json:"brief"`
}

// TranslateRequest translates one text or an indexed batch.
type TranslateRequest struct {
	Text   string   `json:"text"`
	Texts  []string `json:"texts"`
	Target string   `json:"target" binding:"required"`
	Source string   `json:"source"`
}

type TranslateResponse struct {
	Text  string   `json:"text,omitempty"`
	Texts []string `json:"texts,omitempty"`
}

// SearchRequest queries the embedding index directly.
type SearchRequest struct {
	Query    string `json:"query" binding:"required"`
	TopK     int    `json:"top_k"`
	Category string `json:"category"`
	Language string `json:"language"`
}
