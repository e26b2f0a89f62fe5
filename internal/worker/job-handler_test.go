package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/entity"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuditRepo struct {
	saved   []entity.AuditEvent
	saveErr *app_error.AppError
}

func (f *fakeAuditRepo) SaveEvent(ctx context.Context, event entity.AuditEvent) *app_error.AppError {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, event)
	return nil
}

func TestHandle_AuditEventPersisted(t *testing.T) {
	repo := &fakeAuditRepo{}
	handler := &JobHandler{AuditRepo: repo}

	event := entity.AuditEvent{
		ID:        "ev-1",
		ActorID:   "u-1",
		Action:    "user.created",
		TargetID:  "u-2",
		CreatedAt: time.Now(),
	}

	job := queue.Job{
		ID:      "job-1",
		Type:    queue.JobTypeAuditEvent,
		Payload: queue.MustMarshal(event),
	}

	require.NoError(t, handler.Handle(context.Background(), job))
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "user.created", repo.saved[0].Action)
	assert.Equal(t, "u-1", repo.saved[0].ActorID)
}

func TestHandle_AuditEventIDDefaulted(t *testing.T) {
	repo := &fakeAuditRepo{}
	handler := &JobHandler{AuditRepo: repo}

	job := queue.Job{
		ID:      "job-1",
		Type:    queue.JobTypeAuditEvent,
		Payload: queue.MustMarshal(entity.AuditEvent{Action: "user.login"}),
	}

	require.NoError(t, handler.Handle(context.Background(), job))
	require.Len(t, repo.saved, 1)
	assert.NotEmpty(t, repo.saved[0].ID, "missing event id gets generated")
}

func TestHandle_UnknownTypeDropped(t *testing.T) {
	repo := &fakeAuditRepo{}
	handler := &JobHandler{AuditRepo: repo}

	job := queue.Job{ID: "job-1", Type: "mystery"}

	assert.NoError(t, handler.Handle(context.Background(), job), "unknown types are dropped without retry")
	assert.Empty(t, repo.saved)
}

func TestHandle_MalformedPayload(t *testing.T) {
	repo := &fakeAuditRepo{}
	handler := &JobHandler{AuditRepo: repo}

	job := queue.Job{
		ID:      "job-1",
		Type:    queue.JobTypeAuditEvent,
		Payload: json.RawMessage(`{not json`),
	}

	assert.Error(t, handler.Handle(context.Background(), job))
	assert.Empty(t, repo.saved)
}

func TestHandle_RepoFailureSurfaces(t *testing.T) {
	repo := &fakeAuditRepo{saveErr: app_error.NewAppError(500, "insert failed", "db-audit")}
	handler := &JobHandler{AuditRepo: repo}

	job := queue.Job{
		ID:      "job-1",
		Type:    queue.JobTypeAuditEvent,
		Payload: queue.MustMarshal(entity.AuditEvent{ID: "ev-1", Action: "user.updated"}),
	}

	assert.Error(t, handler.Handle(context.Background(), job), "persistence failure must trigger the retry path")
}
