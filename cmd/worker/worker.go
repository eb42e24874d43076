package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"swasthya-sahayak/internal/config"
	"swasthya-sahayak/internal/logger"
	"swasthya-sahayak/internal/queue"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger.InitLogger(cfg)

	mongoClient, err := config.ConnectMongoDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(context.Background())
	db := mongoClient.Database(cfg.DBName)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	client := asynq.NewClient(redisOpt)
	defer client.Close()

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("Task failed", "type", task.Type(), "error", err)
			}),
		},
	)

	processor := queue.NewTaskProcessor(db, client)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskReminderDeliver, processor.DeliverReminder)

	logger.Info("Starting reminder worker", "redis", cfg.RedisURL)
	if err := server.Run(mux); err != nil {
		log.Fatal("Worker stopped:", err)
	}
}
