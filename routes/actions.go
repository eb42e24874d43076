package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"

	"swasthya-sahayak/internal/actions"
	"swasthya-sahayak/internal/logger"
	"swasthya-sahayak/internal/queue"
	"swasthya-sahayak/internal/telemetry"
	"swasthya-sahayak/models"
	"swasthya-sahayak/utils"
)

// ActionDeps groups what the action endpoints need. DB and Queue may be nil;
// actions still execute, only the durable trace and deferred delivery are
// skipped.
type ActionDeps struct {
	Registry *actions.Registry
	DB       *mongo.Database
	Queue    *asynq.Client
	Metrics  *telemetry.Metrics
}

// SetupActionRoutes exposes the action catalog: discovery plus dispatch.
func SetupActionRoutes(router *gin.Engine, deps ActionDeps) {
	router.GET("/actions", func(c *gin.Context) {
		catalog := deps.Registry.List()
		listing := make([]gin.H, 0, len(catalog))
		for _, a := range catalog {
			listing = append(listing, gin.H{"name": a.Name(), "description": a.Description()})
		}
		c.JSON(http.StatusOK, gin.H{"actions": listing, "count": len(listing)})
	})

	router.POST("/actions/:name", func(c *gin.Context) {
		name := c.Param("name")

		input := actions.Input{}
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				utils.RespondWithBadRequest(c, "Invalid action input", gin.H{"error": err.Error()})
				return
			}
		}

		result := deps.Registry.Execute(c.Request.Context(), name, input)
		if deps.Metrics != nil {
			deps.Metrics.RecordAction(name, result.Success)
		}

		if !result.Success {
			status := http.StatusBadRequest
			if result.Error != nil && result.Error.Kind == actions.ErrExternal {
				status = http.StatusBadGateway
			}
			c.JSON(status, result)
			return
		}

		persistActionTrace(c.Request.Context(), deps, name, input, result)
		c.JSON(http.StatusOK, result)
	})
}

// persistActionTrace writes the durable record for side-effecting actions and
// schedules reminder delivery. Best effort: persistence failures are logged,
// the action result already went back to the caller's success path.
func persistActionTrace(ctx context.Context, deps ActionDeps, name string, input actions.Input, result actions.Result) {
	if deps.DB == nil {
		return
	}
	now := time.Now()

	switch data := result.Data.(type) {
	case actions.AppointmentResult:
		record := models.AppointmentRecord{
			BookingID:    data.BookingID,
			Facility:     data.Facility,
			Type:         data.Type,
			DateTime:     data.DateTime,
			PatientName:  input.String("patient_name"),
			PatientPhone: utils.MaskPhone(input.String("patient_phone")),
			Status:       data.Status,
			CreatedAt:    now,
		}
		insertTrace(ctx, deps.DB, models.AppointmentsCollection, record, name)

	case actions.NotificationResult:
		record := models.NotificationRecord{
			MessageID:   data.MessageID,
			Recipient:   data.Recipient,
			Channel:     data.Channel,
			MessageType: input.String("message_type"),
			Status:      data.Status,
			CreatedAt:   now,
		}
		insertTrace(ctx, deps.DB, models.NotificationsCollection, record, name)

	case actions.ReminderResult:
		record := models.ReminderRecord{
			ReminderID:  data.ReminderID,
			Type:        input.String("type"),
			Title:       input.String("title"),
			Description: input.String("description"),
			NextTrigger: data.NextTrigger,
			Recurring:   data.Recurring,
			Status:      data.Status,
			CreatedAt:   now,
		}
		insertTrace(ctx, deps.DB, models.RemindersCollection, record, name)
		enqueueReminder(ctx, deps.Queue, record)
	}
}

func insertTrace(ctx context.Context, db *mongo.Database, collection string, record any, action string) {
	if _, err := db.Collection(collection).InsertOne(ctx, record); err != nil {
		logger.Warn("Failed to persist action trace", "action", action, "collection", collection, "error", err)
	}
}

func enqueueReminder(ctx context.Context, client *asynq.Client, record models.ReminderRecord) {
	if client == nil {
		return
	}
	task, err := queue.NewReminderDeliveryTask(queue.ReminderPayload{
		ReminderID:  record.ReminderID,
		Type:        record.Type,
		Title:       record.Title,
		Description: record.Description,
		Recurring:   record.Recurring,
	}, record.NextTrigger)
	if err != nil {
		logger.Error("Failed to build reminder task", "reminder_id", record.ReminderID, "error", err)
		return
	}
	if _, err := client.EnqueueContext(ctx, task); err != nil {
		logger.Warn("Failed to enqueue reminder delivery", "reminder_id", record.ReminderID, "error", err)
	}
}
