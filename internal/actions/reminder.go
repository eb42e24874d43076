package actions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type scheduleReminderAction struct {
	now func() time.Time
}

// NewScheduleReminder builds the reminder-scheduling catalog entry.
func NewScheduleReminder() Action { return &scheduleReminderAction{now: time.Now} }

func (a *scheduleReminderAction) Name() string { return "schedule_reminder" }

func (a *scheduleReminderAction) Description() string {
	return "Schedule a medication, vaccination or checkup reminder, optionally recurring."
}

func (a *scheduleReminderAction) Execute(_ context.Context, input Input) Result {
	for _, field := range []string{"type", "title", "date", "time"} {
		if input.String(field) == "" {
			return failValidation("%s is required", field)
		}
	}

	trigger, err := time.ParseInLocation("2006-01-02 15:04",
		input.String("date")+" "+input.String("time"), time.Local)
	if err != nil {
		return failValidation("date/time must be YYYY-MM-DD and HH:MM")
	}
	if trigger.Before(a.now()) {
		return failValidation("reminder time %s is in the past", trigger.Format("2006-01-02 15:04"))
	}

	reminder := ReminderResult{
		ReminderID:  fmt.Sprintf("REM-%s", strings.ToUpper(uuid.New().String()[:8])),
		Status:      "scheduled",
		NextTrigger: trigger,
		Recurring:   input.Bool("recurring"),
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Reminder %q scheduled for %s.", input.String("title"), trigger.Format("02 Jan 2006 15:04")),
		Data:    reminder,
	}
}
