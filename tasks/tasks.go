package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"shopshopapi/compositor"
	"shopshopapi/models"
	"shopshopapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type RenderSnapshotPayload struct {
	RenderID uint `json:"render_id"`
}

// TaskEnqueuer is the slice of asynq.Client the HTTP handlers need, kept
// narrow so they can be tested without a redis broker behind them.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Client initializes an asynq client for enqueuing tasks
func NewClient() (*asynq.Client, error) {
	return asynq.NewClient(asynq.RedisClientOpt{Addr: services.GetEnv("ASYNC_BROKER_ADDRESS", "localhost:6379")}), nil
}

// NewRenderSnapshotTask enqueues a snapshot render job
func NewRenderSnapshotTask(renderID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(RenderSnapshotPayload{RenderID: renderID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask("render:snapshot", payload, asynq.Queue("render"), asynq.MaxRetry(3)), nil

}

func saveFailRenderJob(db *gorm.DB, job models.RenderJob, message string) {
	job.Status = "failed"
	job.RenderRetryTimes = job.RenderRetryTimes + 1
	job.RenderErrorMessage = services.StrPointer(message)
	db.Save(&job)
}

func HandleRenderSnapshotTask(ctx context.Context, t *asynq.Task, db *gorm.DB, renderService services.RenderServiceProvider, awsService services.AWSServiceProvider) error {
	var payload RenderSnapshotPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}
	fmt.Printf("[Render: %v] Start Processing\n", payload.RenderID)

	var job models.RenderJob
	res := db.First(&job, payload.RenderID)
	if res.Error != nil {
		sentry.CaptureException(fmt.Errorf("[QUEUE] Error on retrieving render job for processing %v", payload.RenderID))
		return res.Error
	}
	if job.Status == "completed" {
		fmt.Printf("[Render: %v] Snapshot already rendered\n", payload.RenderID)
		return nil
	}

	var layout compositor.SnapshotLayout
	if err := json.Unmarshal([]byte(job.LayoutJSON), &layout); err != nil {
		sentry.CaptureException(fmt.Errorf("[Render: %v] Error on parsing snapshot layout: %v", payload.RenderID, err))
		saveFailRenderJob(db, job, "Could not read snapshot layout, please export again")
		return err
	}

	imageBytes, err := renderService.RenderSnapshot(layout, job.Quality)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Render: %v] Error on rasterizing snapshot: %v", payload.RenderID, err))
		saveFailRenderJob(db, job, "Failed to render image, please try again")
		return err
	}
	fmt.Printf("[Render: %v] Rendered %d bytes at quality %s\n", payload.RenderID, len(imageBytes), job.Quality)

	bucketName := os.Getenv("R2_BUCKET_NAME")
	imageKey := fmt.Sprintf("snapshots/%s/%s-%s.png", job.SessionID, job.FilenameBase, job.Quality)
	uploadURL, err := awsService.PresignLink(ctx, bucketName, imageKey)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Render: %v] Error on presigning upload URL for %s: %v", payload.RenderID, imageKey, err))
		saveFailRenderJob(db, job, "Failed to upload image, please try again")
		return err
	}
	_, statusCode, err := awsService.UploadToPresignedURL(ctx, bucketName, uploadURL, imageBytes)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Render: %v] Error on uploading snapshot %s: %v code: %v", payload.RenderID, imageKey, err, statusCode))
		saveFailRenderJob(db, job, "Failed to upload image, please try again")
		return err
	}

	job.Status = "completed"
	job.ImageKey = &imageKey
	job.RenderErrorMessage = nil
	if err := db.Save(&job).Error; err != nil {
		sentry.CaptureException(fmt.Errorf("[Render: %v] Error on saving completed job: %v", payload.RenderID, err))
		return err
	}
	fmt.Printf("[Render: %v] Completed, stored as %s\n", payload.RenderID, imageKey)
	return nil
}
