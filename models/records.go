package models

import "time"

// Mongo collection names.
const (
	AppointmentsCollection  = "appointments"
	RemindersCollection     = "reminders"
	NotificationsCollection = "notifications"
)

// AppointmentRecord is the durable trace of a book_appointment action.
type AppointmentRecord struct {
	BookingID    string    `bson:"booking_id" json:"booking_id"`
	Facility     string    `bson:"facility" json:"facility"`
	Type         string    `bson:"type" json:"type"`
	DateTime     string    `bson:"date_time" json:"date_time"`
	PatientName  string    `bson:"patient_name" json:"patient_name"`
	PatientPhone string    `bson:"patient_phone" json:"patient_phone"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// ReminderRecord is the durable trace of a schedule_reminder action. The
// worker updates Status and NextTrigger as deliveries happen.
type ReminderRecord struct {
	ReminderID  string    `bson:"reminder_id" json:"reminder_id"`
	Type        string    `bson:"type" json:"type"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	NextTrigger time.Time `bson:"next_trigger" json:"next_trigger"`
	Recurring   bool      `bson:"recurring" json:"recurring"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	DeliveredAt time.Time `bson:"delivered_at,omitempty" json:"delivered_at,omitempty"`
}

// NotificationRecord is a delivery receipt; Recipient is stored masked.
type NotificationRecord struct {
	MessageID   string    `bson:"message_id" json:"message_id"`
	Recipient   string    `bson:"recipient" json:"recipient"`
	Channel     string    `bson:"channel" json:"channel"`
	MessageType string    `bson:"message_type" json:"message_type"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
