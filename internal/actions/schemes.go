package actions

import (
	"context"
	"fmt"
	"sort"

	"swasthya-sahayak/internal/catalog"
)

type schemeEligibilityAction struct{}

// NewCheckSchemeEligibility builds the scheme-eligibility catalog entry.
func NewCheckSchemeEligibility() Action { return &schemeEligibilityAction{} }

func (a *schemeEligibilityAction) Name() string { return "check_scheme_eligibility" }

func (a *schemeEligibilityAction) Description() string {
	return "Check which government health schemes a user is eligible for, by category and personal attributes."
}

func (a *schemeEligibilityAction) Execute(_ context.Context, input Input) Result {
	category := input.String("category")
	if category == "" {
		category = "all"
	}

	attrs := catalog.UserAttributes{
		IsPregnant:  input.Bool("is_pregnant"),
		HasChildren: input.Bool("has_children"),
		IncomeTier:  input.String("income_tier"),
		Age:         input.Int("age"),
	}

	candidates := catalog.SchemesByCategory(category)
	if len(candidates) == 0 {
		return failValidation("unknown scheme category %q", category)
	}

	results := make([]SchemeResult, 0, len(candidates))
	for _, scheme := range candidates {
		eligible, reason := scheme.Evaluate(attrs)
		results = append(results, SchemeResult{
			SchemeID:   scheme.ID,
			Name:       scheme.Name,
			IsEligible: eligible,
			Reason:     reason,
			Benefits:   scheme.Benefits,
		})
	}

	// Eligible schemes first, original catalog order within each group.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].IsEligible && !results[j].IsEligible
	})

	eligibleCount := 0
	for _, r := range results {
		if r.IsEligible {
			eligibleCount++
		}
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("You appear eligible for %d of %d schemes checked.", eligibleCount, len(results)),
		Data:    results,
	}
}
