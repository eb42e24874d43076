package actions

import (
	"time"

	"swasthya-sahayak/internal/catalog"
)

// FacilitySearchResult lists matching facilities with the helpline map and a
// localized count message.
type FacilitySearchResult struct {
	Facilities       []catalog.Facility `json:"facilities"`
	EmergencyNumbers map[string]string  `json:"emergency_numbers"`
	Message          string             `json:"message"`
}

// AppointmentResult is the booking stub output. Status is "pending" until a
// real scheduling system confirms.
type AppointmentResult struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"` // confirmed, pending, failed
	Facility  string `json:"facility"`
	DateTime  string `json:"date_time"`
	Type      string `json:"type"`
}

// NotificationResult echoes the dispatch with a masked recipient.
type NotificationResult struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"` // sent, queued, failed
	Recipient string `json:"recipient"`
	Channel   string `json:"channel"`
}

// ReminderResult reports a scheduled reminder and its next trigger.
type ReminderResult struct {
	ReminderID  string    `json:"reminder_id"`
	Status      string    `json:"status"` // scheduled, failed
	NextTrigger time.Time `json:"next_trigger"`
	Recurring   bool      `json:"recurring"`
}

// SchemeResult annotates one scheme with the eligibility verdict.
type SchemeResult struct {
	SchemeID   string   `json:"scheme_id"`
	Name       string   `json:"name"`
	IsEligible bool     `json:"is_eligible"`
	Reason     string   `json:"reason"`
	Benefits   []string `json:"benefits"`
}

// WeatherAlertResult carries season-specific health advisories.
type WeatherAlertResult struct {
	Location   string   `json:"location"`
	Season     string   `json:"season"`
	Severity   string   `json:"severity"`
	Advisories []string `json:"advisories"`
}

// Recommendation is one personalized care suggestion.
type Recommendation struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Priority    string `json:"priority"` // urgent, important, routine
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	DueDate     string `json:"due_date,omitempty"`
}
