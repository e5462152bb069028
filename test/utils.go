package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"shopshopapi/compositor"
	"shopshopapi/models"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {

	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func Contains(items []string, lookFor string) bool {

	for i := 0; i < len(items); i++ {

		if items[i] == lookFor {
			return true
		}
	}
	return false
}

// FakeDescription seeds one saved description with a record id derived
// from the given offset so records stay unique and ordered within a test.
func FakeDescription(db *gorm.DB, description string, lang models.Language, offset int) *models.GeneratedDescription {
	item := models.NewClothingItem()
	item.Type = "Shirt"
	record := &models.GeneratedDescription{
		RecordID:    fmt.Sprint(time.Now().Add(time.Duration(offset) * time.Millisecond).UnixMilli()),
		Namespace:   models.DescriptionNamespace,
		Description: description,
		Language:    lang,
	}
	record.SetItem(item)
	db.Create(record)
	return record
}

type AWSProviderMock struct {
	MockUrl  string
	mu       sync.Mutex
	Uploaded map[string][]byte
}

func (awsService *AWSProviderMock) InitPresignClient(ctx context.Context) error {
	return nil
}

func (awsService *AWSProviderMock) PresignLink(ctx context.Context, bucketName string, fileName string) (string, error) {

	return fmt.Sprintf("https://fakebucketurl.com/%s", fileName), nil
}

func (awsService *AWSProviderMock) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	if awsService.MockUrl != "" {
		return awsService.MockUrl, nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s", fileKey), nil
}

func (awsService *AWSProviderMock) UploadToPresignedURL(ctx context.Context, bucketName, url string, fileContent []byte) (string, int, error) {
	awsService.mu.Lock()
	defer awsService.mu.Unlock()
	if awsService.Uploaded == nil {
		awsService.Uploaded = map[string][]byte{}
	}
	awsService.Uploaded[url] = fileContent
	return url, 204, nil
}

// RenderServiceMock skips rasterization and hands back a fixed byte blob.
type RenderServiceMock struct {
	LastLayout  *compositor.SnapshotLayout
	LastQuality models.ImageQuality
	Err         error
}

func (m *RenderServiceMock) RenderSnapshot(layout compositor.SnapshotLayout, quality models.ImageQuality) ([]byte, error) {
	m.LastLayout = &layout
	m.LastQuality = quality
	if m.Err != nil {
		return nil, m.Err
	}
	return []byte("fake-png-bytes"), nil
}

// TaskEnqueuerMock records enqueued tasks instead of talking to redis.
type TaskEnqueuerMock struct {
	mu    sync.Mutex
	Tasks []*asynq.Task
	Err   error
}

func (m *TaskEnqueuerMock) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	m.Tasks = append(m.Tasks, task)
	return &asynq.TaskInfo{ID: fmt.Sprint(len(m.Tasks)), Type: task.Type(), Payload: task.Payload()}, nil
}

type URLCacheMock struct{}

func (m URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s", objectKey), nil
}
