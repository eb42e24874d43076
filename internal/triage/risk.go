package triage

import "strings"

// Symptom weight tables. Matching is case-insensitive substring so "severe
// chest pain" still hits "chest pain".
var criticalSymptoms = []string{
	"chest pain", "difficulty breathing", "shortness of breath", "unconscious",
	"severe bleeding", "heavy bleeding", "seizure", "stroke", "paralysis",
	"severe burn", "poisoning", "blue lips", "no pulse",
}

var moderateSymptoms = []string{
	"high fever", "persistent vomiting", "severe headache", "dehydration",
	"severe pain", "blurred vision", "swelling", "severe diarrhea",
	"blood in stool", "blood in urine", "stiff neck",
}

const (
	criticalWeight = 40
	moderateWeight = 20
	baselineWeight = 5

	ageModifier       = 15
	pregnancyModifier = 20
	chronicModifier   = 15
)

// Risk levels, ordered.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

var riskRecommendations = map[string]string{
	RiskCritical: "Seek emergency care immediately. Call 108 for an ambulance or go straight to the nearest hospital.",
	RiskHigh:     "Visit the nearest health facility today. Do not wait for symptoms to worsen.",
	RiskMedium:   "Consult a health worker within 24 hours and keep monitoring the symptoms.",
	RiskLow:      "Monitor at home with rest and fluids. Seek care if symptoms persist or worsen.",
}

// RiskInput carries the symptom list and the context modifiers.
type RiskInput struct {
	Symptoms            []string `json:"symptoms"`
	Age                 int      `json:"age,omitempty"`
	IsPregnant          bool     `json:"is_pregnant,omitempty"`
	HasChronicCondition bool     `json:"has_chronic_condition,omitempty"`
}

// RiskAssessment is the ordinal result of the weighted rubric.
type RiskAssessment struct {
	Score            int               `json:"score"`
	Level            string            `json:"risk_level"`
	Recommendation   string            `json:"recommendation"`
	EmergencyNumbers map[string]string `json:"emergency_numbers,omitempty"`
}

// AssessRisk converts symptoms and context into an ordinal risk level. This
// is a deterministic additive rubric, not a clinical model: every symptom
// scores its baseline plus a bucket bonus, then fixed context modifiers are
// added and the total is banded.
func AssessRisk(input RiskInput) RiskAssessment {
	score := 0
	for _, symptom := range input.Symptoms {
		lowered := strings.ToLower(symptom)
		score += baselineWeight
		switch {
		case matchesAny(lowered, criticalSymptoms):
			score += criticalWeight
		case matchesAny(lowered, moderateSymptoms):
			score += moderateWeight
		}
	}

	if input.Age > 0 && (input.Age < 5 || input.Age > 65) {
		score += ageModifier
	}
	if input.IsPregnant {
		score += pregnancyModifier
	}
	if input.HasChronicCondition {
		score += chronicModifier
	}

	level := RiskLow
	switch {
	case score >= 60:
		level = RiskCritical
	case score >= 40:
		level = RiskHigh
	case score >= 20:
		level = RiskMedium
	}

	assessment := RiskAssessment{
		Score:          score,
		Level:          level,
		Recommendation: riskRecommendations[level],
	}
	if level == RiskCritical {
		assessment.EmergencyNumbers = EmergencyNumbers
	}
	return assessment
}

func matchesAny(symptom string, table []string) bool {
	for _, phrase := range table {
		if strings.Contains(symptom, phrase) {
			return true
		}
	}
	return false
}
