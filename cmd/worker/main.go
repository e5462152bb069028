package main

import (
	"context"
	"log"
	"os"

	"shopshopapi/dbhelper"
	"shopshopapi/services"
	"shopshopapi/tasks"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")},
		asynq.Config{Concurrency: 10, Queues: map[string]int{
			"render": 7,
		}},
	)
	awsService := &services.AWSService{}
	renderService := &services.GGRenderService{}
	err := awsService.InitPresignClient(context.Background())
	if err != nil {
		log.Fatal("[Queue] Failed to initialize AWS provider: S3")
	}

	mux := asynq.NewServeMux()
	db := dbhelper.SetupDB()
	mux.HandleFunc("render:snapshot", func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleRenderSnapshotTask(ctx, t, db, renderService, awsService)
	})

	if err := srv.Run(mux); err != nil {
		log.Fatal(err)
	}
}
