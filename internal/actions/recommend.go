package actions

import (
	"context"
	"fmt"
	"sort"
	"time"
)

var priorityRank = map[string]int{"urgent": 0, "important": 1, "routine": 2}

type recommendationsAction struct {
	now func() time.Time
}

// NewPersonalizedRecommendations builds the recommendation catalog entry.
func NewPersonalizedRecommendations() Action {
	return &recommendationsAction{now: time.Now}
}

func (a *recommendationsAction) Name() string { return "get_personalized_recommendations" }

func (a *recommendationsAction) Description() string {
	return "Generate personalized care recommendations from pregnancy stage, children's ages and the current season."
}

func (a *recommendationsAction) Execute(_ context.Context, input Input) Result {
	now := a.now()
	recs := []Recommendation{}

	if input.Bool("is_pregnant") {
		week := input.Int("pregnancy_week")
		switch {
		case week > 0 && week <= 12:
			recs = append(recs, Recommendation{
				ID: "rec-anc-early", Category: "maternal", Priority: "urgent",
				Title:       "Register your pregnancy and book the first ANC checkup",
				Description: "The first antenatal checkup should happen within 12 weeks. Registration also unlocks scheme benefits.",
				Action:      "book_appointment",
				DueDate:     now.AddDate(0, 0, 14).Format("2006-01-02"),
			})
		case week >= 28:
			recs = append(recs, Recommendation{
				ID: "rec-delivery-prep", Category: "maternal", Priority: "urgent",
				Title:       "Prepare for delivery",
				Description: "Identify the delivery facility, keep transport and emergency numbers ready, and pack essentials.",
				Action:      "find_facility",
			})
		default:
			recs = append(recs, Recommendation{
				ID: "rec-anc-regular", Category: "maternal", Priority: "important",
				Title:       "Continue regular ANC checkups",
				Description: "Attend every scheduled antenatal checkup and take iron-folic acid tablets daily.",
				Action:      "schedule_reminder",
			})
		}
	}

	if input.Bool("has_children") {
		for i, age := range input.IntSlice("children_ages") {
			if age < 1 {
				recs = append(recs, Recommendation{
					ID: fmt.Sprintf("rec-vaccination-%d", i+1), Category: "child", Priority: "urgent",
					Title:       "Complete infant vaccinations",
					Description: "Children under one need doses at birth, 6, 10 and 14 weeks, and measles-rubella at 9 months.",
					Action:      "schedule_reminder",
				})
			} else if age < 6 {
				recs = append(recs, Recommendation{
					ID: fmt.Sprintf("rec-anganwadi-%d", i+1), Category: "child", Priority: "important",
					Title:       "Register at the anganwadi centre",
					Description: "Children under six get supplementary nutrition and monthly growth monitoring at the anganwadi.",
					Action:      "find_facility",
				})
			}
		}
	}

	if SeasonForMonth(now.Month()) == SeasonMonsoon {
		recs = append(recs, Recommendation{
			ID: "rec-monsoon", Category: "seasonal", Priority: "important",
			Title:       "Protect the household from mosquito-borne disease",
			Description: "Use bed nets, empty standing water weekly, and get any fever lasting two days tested.",
			Action:      "get_weather_health_alerts",
		})
	}

	recs = append(recs, Recommendation{
		ID: "rec-checkup", Category: "general", Priority: "routine",
		Title:       "Annual health checkup",
		Description: "A yearly general checkup at the nearest PHC catches blood pressure and sugar problems early.",
		Action:      "book_appointment",
	})

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
	})

	return Result{
		Success: true,
		Message: fmt.Sprintf("%d recommendations generated.", len(recs)),
		Data:    recs,
	}
}
