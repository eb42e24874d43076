package actions

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRegistryUnknownAction(t *testing.T) {
	r := NewRegistry(NewFindFacility())
	res := r.Execute(context.Background(), "no_such_action", Input{})
	if res.Success {
		t.Fatalf("unknown action reported success")
	}
	if res.Error == nil || res.Error.Kind != ErrValidation {
		t.Fatalf("unknown action error = %+v, want validation kind", res.Error)
	}
}

type panickyAction struct{}

func (panickyAction) Name() string        { return "boom" }
func (panickyAction) Description() string { return "always panics" }
func (panickyAction) Execute(context.Context, Input) Result {
	panic("exploded")
}

func TestRegistryRecoversPanic(t *testing.T) {
	r := NewRegistry(panickyAction{})
	res := r.Execute(context.Background(), "boom", Input{})
	if res.Success {
		t.Fatalf("panicking action reported success")
	}
	if res.Error == nil || res.Error.Kind != ErrExternal {
		t.Fatalf("panic error = %+v, want external kind", res.Error)
	}
}

func TestFindFacilityValidation(t *testing.T) {
	a := NewFindFacility()
	res := a.Execute(context.Background(), Input{})
	if res.Success || res.Error.Kind != ErrValidation {
		t.Fatalf("missing location not rejected: %+v", res)
	}
	res = a.Execute(context.Background(), Input{"location": "nashik", "type": "spaceship"})
	if res.Success || res.Error.Kind != ErrValidation {
		t.Fatalf("bad facility type not rejected: %+v", res)
	}
}

func TestFindFacilitySuccess(t *testing.T) {
	a := NewFindFacility()
	res := a.Execute(context.Background(), Input{"location": "nashik", "type": "hospital"})
	if !res.Success {
		t.Fatalf("search failed: %+v", res.Error)
	}
	data, ok := res.Data.(FacilitySearchResult)
	if !ok {
		t.Fatalf("data is %T, want FacilitySearchResult", res.Data)
	}
	if len(data.Facilities) == 0 {
		t.Fatalf("no hospitals found in nashik")
	}
	if data.EmergencyNumbers["ambulance"] != "108" {
		t.Fatalf("emergency numbers missing: %v", data.EmergencyNumbers)
	}
	if !strings.Contains(data.Message, "nashik") {
		t.Fatalf("count message missing location: %q", data.Message)
	}
}

func TestBookAppointment(t *testing.T) {
	a := NewBookAppointment()

	res := a.Execute(context.Background(), Input{"facility": "PHC Deolali"})
	if res.Success || res.Error.Kind != ErrValidation {
		t.Fatalf("incomplete booking not rejected: %+v", res)
	}

	res = a.Execute(context.Background(), Input{
		"facility": "PHC Deolali", "type": "anc_checkup", "date": "2026-09-10",
		"time": "10:30", "patient_name": "Sunita", "patient_phone": "9876543210",
	})
	if !res.Success {
		t.Fatalf("booking failed: %+v", res.Error)
	}
	booking := res.Data.(AppointmentResult)
	if !strings.HasPrefix(booking.BookingID, "APT-") {
		t.Fatalf("booking id = %q, want APT- prefix", booking.BookingID)
	}
	if booking.Status != "pending" {
		t.Fatalf("status = %q, want pending", booking.Status)
	}
}

func TestSendNotificationMasksRecipient(t *testing.T) {
	a := NewSendNotification()

	res := a.Execute(context.Background(), Input{"phone": "12345", "message": "hi"})
	if res.Success || res.Error.Kind != ErrValidation {
		t.Fatalf("short phone not rejected: %+v", res)
	}

	res = a.Execute(context.Background(), Input{
		"phone": "9876543210", "name": "Sunita", "message_type": "appointment", "message": "Your appointment is confirmed",
	})
	if !res.Success {
		t.Fatalf("notification failed: %+v", res.Error)
	}
	n := res.Data.(NotificationResult)
	if n.Status != "queued" || n.Channel != "sms" {
		t.Fatalf("notification = %+v", n)
	}
	if strings.Contains(n.Recipient, "987654") {
		t.Fatalf("recipient not masked: %q", n.Recipient)
	}
	if !strings.HasSuffix(n.Recipient, "3210") {
		t.Fatalf("masked recipient lost last digits: %q", n.Recipient)
	}
}

func TestSeasonForMonth(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.March, SeasonSummer},
		{time.June, SeasonSummer},
		{time.July, SeasonMonsoon},
		{time.October, SeasonMonsoon},
		{time.November, SeasonWinter},
		{time.February, SeasonWinter},
	}
	for _, tt := range tests {
		if got := SeasonForMonth(tt.month); got != tt.want {
			t.Fatalf("SeasonForMonth(%v) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestWeatherAlertsBySeason(t *testing.T) {
	a := &weatherAlertsAction{now: func() time.Time {
		return time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	}}
	res := a.Execute(context.Background(), Input{"location": "Nashik"})
	if !res.Success {
		t.Fatalf("alerts failed: %+v", res.Error)
	}
	alerts := res.Data.(WeatherAlertResult)
	if alerts.Season != SeasonMonsoon {
		t.Fatalf("season = %q, want monsoon in August", alerts.Season)
	}
	joined := strings.ToLower(strings.Join(alerts.Advisories, " "))
	if !strings.Contains(joined, "mosquito") {
		t.Fatalf("monsoon advisories missing mosquito guidance: %v", alerts.Advisories)
	}
}

func TestScheduleReminder(t *testing.T) {
	fixed := time.Date(2026, 1, 10, 8, 0, 0, 0, time.Local)
	a := &scheduleReminderAction{now: func() time.Time { return fixed }}

	res := a.Execute(context.Background(), Input{
		"type": "medication", "title": "Iron tablet", "date": "2026-01-11", "time": "09:00",
		"recurring": true,
	})
	if !res.Success {
		t.Fatalf("reminder failed: %+v", res.Error)
	}
	rem := res.Data.(ReminderResult)
	if rem.Status != "scheduled" || !rem.Recurring {
		t.Fatalf("reminder = %+v", rem)
	}
	if !strings.HasPrefix(rem.ReminderID, "REM-") {
		t.Fatalf("reminder id = %q", rem.ReminderID)
	}

	res = a.Execute(context.Background(), Input{
		"type": "medication", "title": "Iron tablet", "date": "2025-01-01", "time": "09:00",
	})
	if res.Success || res.Error.Kind != ErrValidation {
		t.Fatalf("past reminder not rejected: %+v", res)
	}

	res = a.Execute(context.Background(), Input{
		"type": "medication", "title": "Iron tablet", "date": "tomorrow", "time": "morning",
	})
	if res.Success || res.Error.Kind != ErrValidation {
		t.Fatalf("unparseable date not rejected: %+v", res)
	}
}

func TestCheckSchemeEligibilityMaternal(t *testing.T) {
	a := NewCheckSchemeEligibility()
	res := a.Execute(context.Background(), Input{"category": "maternal", "is_pregnant": true})
	if !res.Success {
		t.Fatalf("eligibility check failed: %+v", res.Error)
	}
	results := res.Data.([]SchemeResult)

	eligible := map[string]bool{}
	for _, r := range results {
		if r.IsEligible {
			eligible[r.SchemeID] = true
		}
	}
	if !eligible["jsy"] || !eligible["pmmvy"] {
		t.Fatalf("pregnant user not eligible for jsy/pmmvy: %+v", results)
	}

	// Eligible entries sorted before ineligible ones
	seenIneligible := false
	for _, r := range results {
		if !r.IsEligible {
			seenIneligible = true
		} else if seenIneligible {
			t.Fatalf("eligible scheme after ineligible one: %+v", results)
		}
	}
}

func TestCheckSchemeEligibilityUnknownCategory(t *testing.T) {
	a := NewCheckSchemeEligibility()
	res := a.Execute(context.Background(), Input{"category": "astrology"})
	if res.Success || res.Error.Kind != ErrValidation {
		t.Fatalf("unknown category not rejected: %+v", res)
	}
}

func TestRecommendationsPregnancyStages(t *testing.T) {
	a := &recommendationsAction{now: func() time.Time {
		return time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	}}

	res := a.Execute(context.Background(), Input{"is_pregnant": true, "pregnancy_week": float64(8)})
	recs := res.Data.([]Recommendation)
	if recs[0].ID != "rec-anc-early" || recs[0].Priority != "urgent" {
		t.Fatalf("early pregnancy recommendation missing or unsorted: %+v", recs)
	}

	res = a.Execute(context.Background(), Input{"is_pregnant": true, "pregnancy_week": float64(30)})
	recs = res.Data.([]Recommendation)
	if recs[0].ID != "rec-delivery-prep" {
		t.Fatalf("late pregnancy recommendation missing: %+v", recs)
	}
}

func TestRecommendationsChildrenAndSeason(t *testing.T) {
	a := &recommendationsAction{now: func() time.Time {
		return time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC) // monsoon
	}}

	res := a.Execute(context.Background(), Input{
		"has_children":  true,
		"children_ages": []any{float64(0), float64(4)},
	})
	recs := res.Data.([]Recommendation)

	var haveVaccination, haveAnganwadi, haveMonsoon bool
	for _, r := range recs {
		switch {
		case strings.HasPrefix(r.ID, "rec-vaccination"):
			haveVaccination = true
		case strings.HasPrefix(r.ID, "rec-anganwadi"):
			haveAnganwadi = true
		case r.ID == "rec-monsoon":
			haveMonsoon = true
		}
	}
	if !haveVaccination || !haveAnganwadi || !haveMonsoon {
		t.Fatalf("expected vaccination, anganwadi and monsoon recs: %+v", recs)
	}

	// Sorted urgent > important > routine
	for i := 1; i < len(recs); i++ {
		if priorityRank[recs[i].Priority] < priorityRank[recs[i-1].Priority] {
			t.Fatalf("recommendations not sorted by priority: %+v", recs)
		}
	}
}
