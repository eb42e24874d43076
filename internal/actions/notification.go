package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"swasthya-sahayak/utils"
)

type sendNotificationAction struct{}

// NewSendNotification builds the notification-dispatch catalog entry. The
// SMS gateway is stubbed; messages are queued, not sent.
func NewSendNotification() Action { return &sendNotificationAction{} }

func (a *sendNotificationAction) Name() string { return "send_notification" }

func (a *sendNotificationAction) Description() string {
	return "Send an SMS notification (appointment confirmation, health tip, reminder) to a phone number."
}

func (a *sendNotificationAction) Execute(_ context.Context, input Input) Result {
	phone := input.String("phone")
	if phone == "" {
		return failValidation("phone is required")
	}
	if digits := strings.Map(keepDigit, phone); len(digits) < 10 {
		return failValidation("phone must have at least 10 digits")
	}
	if input.String("message") == "" {
		return failValidation("message is required")
	}

	messageType := input.String("message_type")
	if messageType == "" {
		messageType = "general"
	}

	notification := NotificationResult{
		MessageID: fmt.Sprintf("MSG-%s", strings.ToUpper(uuid.New().String()[:8])),
		Status:    "queued",
		Recipient: utils.MaskPhone(phone),
		Channel:   "sms",
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("%s notification queued for %s.", messageType, notification.Recipient),
		Data:    notification,
	}
}

func keepDigit(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}
