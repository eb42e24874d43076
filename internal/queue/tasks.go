// Package queue holds the asynq task definitions and handlers for deferred
// work: reminder deliveries scheduled at their trigger time.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"swasthya-sahayak/internal/logger"
	"swasthya-sahayak/models"
)

const TaskReminderDeliver = "reminder:deliver"

// recurring reminders repeat daily
const recurrenceInterval = 24 * time.Hour

type ReminderPayload struct {
	ReminderID  string `json:"reminder_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Recurring   bool   `json:"recurring"`
}

// NewReminderDeliveryTask builds a delivery task scheduled for the reminder's
// trigger time.
func NewReminderDeliveryTask(p ReminderPayload, triggerAt time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(
		TaskReminderDeliver,
		payload,
		asynq.ProcessAt(triggerAt),
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
		asynq.Queue("default"),
	), nil
}

// TaskProcessor handles queued tasks against the persistence layer.
type TaskProcessor struct {
	db     *mongo.Database
	client *asynq.Client
}

func NewTaskProcessor(db *mongo.Database, client *asynq.Client) *TaskProcessor {
	return &TaskProcessor{db: db, client: client}
}

// DeliverReminder marks the reminder delivered, records a notification
// receipt, and re-enqueues recurring reminders for the next interval.
func (p *TaskProcessor) DeliverReminder(ctx context.Context, t *asynq.Task) error {
	var payload ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal reminder payload: %w", asynq.SkipRetry)
	}

	logger.Info("Delivering reminder", "reminder_id", payload.ReminderID, "type", payload.Type)

	now := time.Now()
	reminders := p.db.Collection(models.RemindersCollection)

	update := bson.M{"delivered_at": now}
	if payload.Recurring {
		update["next_trigger"] = now.Add(recurrenceInterval)
	} else {
		update["status"] = "delivered"
	}
	if _, err := reminders.UpdateOne(ctx,
		bson.M{"reminder_id": payload.ReminderID},
		bson.M{"$set": update},
	); err != nil {
		return err
	}

	receipt := models.NotificationRecord{
		MessageID:   fmt.Sprintf("MSG-REM-%s-%d", payload.ReminderID, now.Unix()),
		Recipient:   "reminder-subscriber",
		Channel:     "sms",
		MessageType: payload.Type,
		Status:      "queued",
		CreatedAt:   now,
	}
	if _, err := p.db.Collection(models.NotificationsCollection).InsertOne(ctx, receipt); err != nil {
		logger.Warn("Failed to record reminder receipt", "reminder_id", payload.ReminderID, "error", err)
	}

	if payload.Recurring && p.client != nil {
		task, err := NewReminderDeliveryTask(payload, now.Add(recurrenceInterval))
		if err != nil {
			return err
		}
		if _, err := p.client.EnqueueContext(ctx, task); err != nil {
			logger.Error("Failed to re-enqueue recurring reminder", "reminder_id", payload.ReminderID, "error", err)
			return err
		}
	}
	return nil
}
