package actions

import (
	"context"
	"fmt"

	"swasthya-sahayak/internal/catalog"
	"swasthya-sahayak/internal/lang"
	"swasthya-sahayak/internal/triage"
)

var facilityCountMessages = map[string]string{
	lang.English: "Found %d health facilities near %s.",
	lang.Hindi:   "%s के पास %d स्वास्थ्य केंद्र मिले।",
	lang.Marathi: "%s जवळ %d आरोग्य केंद्रे सापडली.",
	lang.Punjabi: "%s ਨੇੜੇ %d ਸਿਹਤ ਕੇਂਦਰ ਮਿਲੇ।",
}

type findFacilityAction struct{}

// NewFindFacility builds the facility-search catalog entry.
func NewFindFacility() Action { return &findFacilityAction{} }

func (a *findFacilityAction) Name() string { return "find_facility" }

func (a *findFacilityAction) Description() string {
	return "Find nearby health facilities by location, optionally filtered by facility type and specialty."
}

func (a *findFacilityAction) Execute(_ context.Context, input Input) Result {
	location := input.String("location")
	if location == "" {
		return failValidation("location is required")
	}

	facilityType := input.String("type")
	if facilityType != "" && !validFacilityType(facilityType) {
		return failValidation("unknown facility type %q", facilityType)
	}

	language := input.String("language")
	if _, ok := facilityCountMessages[language]; !ok {
		language = lang.English
	}

	matched := catalog.FindFacilities(location, facilityType, input.String("specialty"))

	var message string
	if language == lang.English {
		message = fmt.Sprintf(facilityCountMessages[language], len(matched), location)
	} else {
		message = fmt.Sprintf(facilityCountMessages[language], location, len(matched))
	}

	return Result{
		Success: true,
		Message: message,
		Data: FacilitySearchResult{
			Facilities:       matched,
			EmergencyNumbers: triage.EmergencyNumbers,
			Message:          message,
		},
	}
}

func validFacilityType(t string) bool {
	for _, known := range catalog.AllFacilityTypes() {
		if t == known {
			return true
		}
	}
	return false
}
