package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type bookAppointmentAction struct{}

// NewBookAppointment builds the appointment-booking catalog entry. The
// handler synthesizes a booking and reports it pending; a real scheduling
// system is the integration point behind this stub.
func NewBookAppointment() Action { return &bookAppointmentAction{} }

func (a *bookAppointmentAction) Name() string { return "book_appointment" }

func (a *bookAppointmentAction) Description() string {
	return "Book an appointment at a health facility for a patient on a given date and time."
}

func (a *bookAppointmentAction) Execute(_ context.Context, input Input) Result {
	for _, field := range []string{"facility", "type", "date", "time", "patient_name", "patient_phone"} {
		if input.String(field) == "" {
			return failValidation("%s is required", field)
		}
	}

	booking := AppointmentResult{
		BookingID: fmt.Sprintf("APT-%s", strings.ToUpper(uuid.New().String()[:8])),
		Status:    "pending",
		Facility:  input.String("facility"),
		DateTime:  fmt.Sprintf("%s %s", input.String("date"), input.String("time")),
		Type:      input.String("type"),
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Appointment request %s sent to %s. You will receive a confirmation.", booking.BookingID, booking.Facility),
		Data:    booking,
	}
}
