package triage

import (
	"strings"
	"testing"
)

func TestAssessRiskCriticalElderly(t *testing.T) {
	a := AssessRisk(RiskInput{Symptoms: []string{"chest pain"}, Age: 70})
	if a.Score < 60 {
		t.Fatalf("score = %d, want >= 60", a.Score)
	}
	if a.Level != RiskCritical {
		t.Fatalf("level = %q, want critical", a.Level)
	}
	if !strings.Contains(a.Recommendation, "108") {
		t.Fatalf("critical recommendation missing 108: %q", a.Recommendation)
	}
	if a.EmergencyNumbers["ambulance"] != "108" {
		t.Fatalf("critical assessment missing emergency numbers")
	}
}

func TestAssessRiskBands(t *testing.T) {
	tests := []struct {
		name  string
		input RiskInput
		level string
	}{
		{"no symptoms", RiskInput{}, RiskLow},
		{"single mild symptom", RiskInput{Symptoms: []string{"runny nose"}}, RiskLow},
		{"moderate symptom", RiskInput{Symptoms: []string{"high fever"}}, RiskMedium},
		{"critical symptom", RiskInput{Symptoms: []string{"difficulty breathing"}}, RiskHigh},
		{"critical symptom pregnant", RiskInput{Symptoms: []string{"severe bleeding"}, IsPregnant: true}, RiskCritical},
		{"moderate plus chronic elderly", RiskInput{Symptoms: []string{"high fever"}, Age: 80, HasChronicCondition: true}, RiskHigh},
		{"infant moderate", RiskInput{Symptoms: []string{"dehydration"}, Age: 2}, RiskHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AssessRisk(tt.input)
			if a.Level != tt.level {
				t.Fatalf("level = %q (score %d), want %q", a.Level, a.Score, tt.level)
			}
		})
	}
}

func TestAssessRiskMonotonic(t *testing.T) {
	base := RiskInput{Symptoms: []string{"headache"}}
	prev := AssessRisk(base).Score
	symptoms := base.Symptoms
	for _, extra := range []string{"chest pain", "severe bleeding", "seizure"} {
		symptoms = append(symptoms, extra)
		score := AssessRisk(RiskInput{Symptoms: symptoms}).Score
		if score < prev {
			t.Fatalf("score decreased from %d to %d after adding %q", prev, score, extra)
		}
		prev = score
	}
}

func TestAssessRiskSubstringMatch(t *testing.T) {
	a := AssessRisk(RiskInput{Symptoms: []string{"sudden severe chest pain on the left side"}})
	if a.Score != baselineWeight+criticalWeight {
		t.Fatalf("substring match failed, score = %d", a.Score)
	}
}

func TestAssessRiskNonCriticalOmitsNumbers(t *testing.T) {
	a := AssessRisk(RiskInput{Symptoms: []string{"mild cough"}})
	if a.EmergencyNumbers != nil {
		t.Fatalf("non-critical assessment carries emergency numbers")
	}
}
