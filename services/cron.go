// Package services holds background services that run alongside the HTTP
// surface: the reminder sweep that catches deliveries the queue missed.
package services

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"swasthya-sahayak/internal/logger"
	"swasthya-sahayak/internal/queue"
	"swasthya-sahayak/models"
)

// ReminderSweeper periodically scans for scheduled reminders whose trigger
// time has passed without a delivery (worker downtime, lost task) and
// re-enqueues them. The asynq task remains the primary delivery path.
type ReminderSweeper struct {
	scheduler *gocron.Scheduler
	db        *mongo.Database
	client    *asynq.Client
}

func NewReminderSweeper(db *mongo.Database, client *asynq.Client) *ReminderSweeper {
	s := gocron.NewScheduler(time.UTC)
	s.TagsUnique()
	return &ReminderSweeper{scheduler: s, db: db, client: client}
}

// Start registers the sweep on the given cron expression and runs the
// scheduler in the background.
func (r *ReminderSweeper) Start(cronExpr string) error {
	if _, err := r.scheduler.Cron(cronExpr).Tag("reminder-sweep").Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := r.Sweep(ctx); err != nil {
			logger.Error("Reminder sweep failed", "error", err)
		}
	}); err != nil {
		return err
	}
	r.scheduler.StartAsync()
	logger.Info("Reminder sweeper started", "cron", cronExpr)
	return nil
}

func (r *ReminderSweeper) Stop() {
	r.scheduler.Stop()
}

// Sweep re-enqueues reminders that are overdue by more than the grace window.
func (r *ReminderSweeper) Sweep(ctx context.Context) error {
	const grace = 5 * time.Minute
	cutoff := time.Now().Add(-grace)

	cursor, err := r.db.Collection(models.RemindersCollection).Find(ctx, bson.M{
		"status":       "scheduled",
		"next_trigger": bson.M{"$lte": cutoff},
		"$or": []bson.M{
			{"delivered_at": bson.M{"$exists": false}},
			{"$expr": bson.M{"$lt": []string{"$delivered_at", "$next_trigger"}}},
		},
	})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var swept int
	for cursor.Next(ctx) {
		var rec models.ReminderRecord
		if err := cursor.Decode(&rec); err != nil {
			logger.Warn("Skipping undecodable reminder", "error", err)
			continue
		}

		task, err := queue.NewReminderDeliveryTask(queue.ReminderPayload{
			ReminderID:  rec.ReminderID,
			Type:        rec.Type,
			Title:       rec.Title,
			Description: rec.Description,
			Recurring:   rec.Recurring,
		}, time.Now())
		if err != nil {
			return err
		}
		if _, err := r.client.EnqueueContext(ctx, task); err != nil {
			logger.Warn("Failed to re-enqueue overdue reminder", "reminder_id", rec.ReminderID, "error", err)
			continue
		}
		swept++
	}
	if swept > 0 {
		logger.Info("Re-enqueued overdue reminders", "count", swept)
	}
	return cursor.Err()
}
