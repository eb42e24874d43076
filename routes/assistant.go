package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swasthya-sahayak/internal/composer"
	"swasthya-sahayak/internal/config"
	"swasthya-sahayak/internal/knowledge"
	"swasthya-sahayak/internal/lang"
	"swasthya-sahayak/internal/logger"
	"swasthya-sahayak/internal/telemetry"
	"swasthya-sahayak/internal/triage"
	"swasthya-sahayak/models"
	"swasthya-sahayak/utils"
)

// searchHit is the wire shape of one retrieval result. The index scores in
// [0,1]; the exposed surface reports 0-100.
type searchHit struct {
	Content  string  `json:"content"`
	Score    float64 `json:"score"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Language string  `json:"language"`
	Source   string  `json:"source,omitempty"`
}

func toSearchHits(results []knowledge.SearchResult) []searchHit {
	hits := make([]searchHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, searchHit{
			Content:  r.Content,
			Score:    r.Score * 100,
			Title:    r.Metadata.Title,
			Category: r.Metadata.Category,
			Language: r.Metadata.Language,
			Source:   r.Metadata.Source,
		})
	}
	return hits
}

// AssistantDeps groups what the assistant endpoints need.
type AssistantDeps struct {
	Detector   *lang.Detector
	Translator *lang.Translator
	Index      *knowledge.Index
	Metrics    *telemetry.Metrics
}

// SetupAssistantRoutes registers the decision-layer endpoints: one turn of
// message analysis, translation, and direct knowledge search.
func SetupAssistantRoutes(router *gin.Engine, cfg *config.Config, deps AssistantDeps) {
	assistant := router.Group("/assistant")

	assistant.POST("/message", func(c *gin.Context) {
		var req models.AssistantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()

		language := req.Language
		if !lang.IsSupported(language) {
			language = deps.Detector.Detect(ctx, req.Message)
		}
		role := req.Role
		if role == "" {
			role = composer.RolePublic
		}
		c.Set("detected_language", language)
		c.Set("user_role", role)

		// Emergency and risk run on the raw message, independent of retrieval.
		emergency := triage.DetectEmergency(req.Message)
		risk := triage.AssessRisk(triage.RiskInput{
			Symptoms:            []string{req.Message},
			Age:                 req.Age,
			IsPregnant:          req.Pregnant,
			HasChronicCondition: req.Chronic,
		})

		if emergency.IsEmergency && deps.Metrics != nil {
			deps.Metrics.EmergenciesFlagged.Add(ctx, 1)
		}

		results, err := deps.Index.Search(ctx, req.Message, cfg.SearchTopK, knowledge.Filters{})
		if err != nil {
			// Degrade to an empty knowledge block rather than failing the turn.
			logger.Warn("Knowledge search failed", "error", err)
			results = nil
		}

		resp := models.AssistantResponse{
			Language:    language,
			IsEmergency: emergency.IsEmergency,
			Knowledge:   results,
			Brief:       composer.Compose(role, language, results),
		}
		if emergency.IsEmergency {
			resp.Emergency = &emergency
		}
		resp.Risk = &risk

		c.JSON(http.StatusOK, resp)
	})

	assistant.POST("/translate", func(c *gin.Context) {
		var req models.TranslateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}
		if !lang.IsSupported(req.Target) {
			utils.RespondWithBadRequest(c, "Unsupported target language", gin.H{"target": req.Target})
			return
		}
		if req.Text == "" && len(req.Texts) == 0 {
			utils.RespondWithBadRequest(c, "Provide text or texts", nil)
			return
		}

		ctx := c.Request.Context()
		resp := models.TranslateResponse{}
		if len(req.Texts) > 0 {
			resp.Texts = deps.Translator.TranslateBatch(ctx, req.Texts, req.Target, req.Source)
		} else {
			resp.Text = deps.Translator.Translate(ctx, req.Text, req.Target, req.Source)
		}
		c.JSON(http.StatusOK, resp)
	})

	assistant.POST("/search", func(c *gin.Context) {
		var req models.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}
		topK := req.TopK
		if topK <= 0 {
			topK = cfg.SearchTopK
		}

		results, err := deps.Index.Search(c.Request.Context(), req.Query, topK,
			knowledge.Filters{Category: req.Category, Language: req.Language})
		if err != nil {
			utils.RespondWithError(c, http.StatusBadGateway, "search_failed",
				"Knowledge search is temporarily unavailable", nil)
			return
		}
		hits := toSearchHits(results)
		c.JSON(http.StatusOK, gin.H{"results": hits, "count": len(hits)})
	})
}
