package actions

import (
	"context"
	"time"
)

// Seasons, coarse-grained by month.
const (
	SeasonSummer  = "summer"  // Mar-Jun
	SeasonMonsoon = "monsoon" // Jul-Oct
	SeasonWinter  = "winter"  // Nov-Feb
)

// SeasonForMonth maps a calendar month to the coarse season used by the
// seasonal advisories and recommendations.
func SeasonForMonth(m time.Month) string {
	switch {
	case m >= time.March && m <= time.June:
		return SeasonSummer
	case m >= time.July && m <= time.October:
		return SeasonMonsoon
	default:
		return SeasonWinter
	}
}

var seasonalAdvisories = map[string]struct {
	severity   string
	advisories []string
}{
	SeasonSummer: {
		severity: "high",
		advisories: []string{
			"Avoid going out between 12 pm and 3 pm; heat stroke risk is highest then.",
			"Drink water frequently even without thirst, and carry ORS when travelling.",
			"Watch for heat stroke signs: very high temperature, dry skin, confusion.",
		},
	},
	SeasonMonsoon: {
		severity: "high",
		advisories: []string{
			"Mosquito-borne diseases (malaria, dengue) peak now. Use bed nets and remove standing water.",
			"Drink only boiled or treated water to avoid diarrhea, typhoid and jaundice.",
			"Seek a blood test for any fever lasting more than two days.",
		},
	},
	SeasonWinter: {
		severity: "medium",
		advisories: []string{
			"Respiratory infections spread in winter. Keep children and the elderly warm.",
			"People with asthma or COPD should keep inhalers at hand and avoid smoke exposure.",
			"Get vulnerable family members vaccinated against seasonal flu where available.",
		},
	},
}

type weatherAlertsAction struct {
	now func() time.Time
}

// NewWeatherAlerts builds the seasonal health-alert catalog entry.
func NewWeatherAlerts() Action { return &weatherAlertsAction{now: time.Now} }

func (a *weatherAlertsAction) Name() string { return "get_weather_health_alerts" }

func (a *weatherAlertsAction) Description() string {
	return "Get seasonal health advisories (heat, mosquito-borne, respiratory) for a location."
}

func (a *weatherAlertsAction) Execute(_ context.Context, input Input) Result {
	location := input.String("location")
	if location == "" {
		return failValidation("location is required")
	}

	season := SeasonForMonth(a.now().Month())
	entry := seasonalAdvisories[season]

	return Result{
		Success: true,
		Message: "Seasonal health advisories for " + location + ".",
		Data: WeatherAlertResult{
			Location:   location,
			Season:     season,
			Severity:   entry.severity,
			Advisories: entry.advisories,
		},
	}
}
