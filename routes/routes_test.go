package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"swasthya-sahayak/internal/actions"
	"swasthya-sahayak/internal/config"
	"swasthya-sahayak/internal/knowledge"
	"swasthya-sahayak/internal/lang"
	"swasthya-sahayak/models"
)

type stubModel struct{}

func (stubModel) GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	return "en", nil
}

func (stubModel) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0, 0}, nil
}

func (stubModel) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	model := stubModel{}
	index := knowledge.NewIndex(model, 3)
	if err := index.Add(context.Background(), "doc-1", "Malaria spreads through mosquito bites.",
		knowledge.Metadata{Title: "Malaria", Category: "disease_prevention", Language: "en"}); err != nil {
		t.Fatalf("seeding test index: %v", err)
	}

	cfg := &config.Config{SearchTopK: 3}

	router := gin.New()
	SetupAssistantRoutes(router, cfg, AssistantDeps{
		Detector:   lang.NewDetector(model),
		Translator: lang.NewTranslator(model),
		Index:      index,
	})
	SetupActionRoutes(router, ActionDeps{
		Registry: actions.NewRegistry(
			actions.NewFindFacility(),
			actions.NewCheckSchemeEligibility(),
		),
	})
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMessageEndpointEmergency(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/assistant/message", models.AssistantRequest{
		Message: "I am having a heart attack",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.AssistantResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.IsEmergency || resp.Emergency == nil {
		t.Fatalf("emergency not flagged: %+v", resp)
	}
	if resp.Emergency.Response.Numbers["ambulance"] != "108" {
		t.Fatalf("ambulance number missing: %+v", resp.Emergency)
	}
	if resp.Language != "en" {
		t.Fatalf("language = %q, want en", resp.Language)
	}
	if resp.Brief == "" {
		t.Fatalf("brief missing from response")
	}
}

func TestMessageEndpointRejectsEmptyBody(t *testing.T) {
	router := testRouter(t)
	w := postJSON(t, router, "/assistant/message", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestTranslateEndpointValidation(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/assistant/translate", models.TranslateRequest{Text: "hello", Target: "fr"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unsupported target accepted: %d %s", w.Code, w.Body.String())
	}

	w = postJSON(t, router, "/assistant/translate", models.TranslateRequest{Target: "hi"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty payload accepted: %d", w.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/assistant/search", models.SearchRequest{Query: "mosquito diseases"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Results []struct {
			Content  string  `json:"content"`
			Score    float64 `json:"score"`
			Category string  `json:"category"`
		} `json:"results"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.Results) != 1 {
		t.Fatalf("results = %+v", resp)
	}
	// Scores are reported on a 0-100 scale; the stub embedder makes the
	// query and document identical, so this is an exact match.
	if got := resp.Results[0].Score; got < 99.9 || got > 100.0001 {
		t.Fatalf("score = %v, want ~100 for an exact match", got)
	}
	if resp.Results[0].Category != "disease_prevention" {
		t.Fatalf("metadata flattened incorrectly: %+v", resp.Results[0])
	}
}

func TestActionsListing(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/actions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Actions []map[string]string `json:"actions"`
		Count   int                 `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 || resp.Actions[0]["name"] != "find_facility" {
		t.Fatalf("listing = %+v", resp)
	}
}

func TestActionDispatch(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/actions/find_facility", gin.H{"location": "nashik", "type": "hospital"})
	if w.Code != http.StatusOK {
		t.Fatalf("dispatch status = %d, body = %s", w.Code, w.Body.String())
	}
	var result actions.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !result.Success {
		t.Fatalf("action failed: %+v", result.Error)
	}

	w = postJSON(t, router, "/actions/no_such_action", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown action status = %d, want 400", w.Code)
	}

	w = postJSON(t, router, "/actions/find_facility", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("validation failure status = %d, want 400", w.Code)
	}
}
