package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/entity"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/queue"
	audit_repo "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/repo/audit"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type JobHandler struct {
	AuditRepo audit_repo.AuditRepoContract
}

func NewJobHandler(appState *state.AppState) *JobHandler {
	return &JobHandler{
		AuditRepo: audit_repo.NewAuditRepo(appState),
	}
}

func (h *JobHandler) Handle(ctx context.Context, job queue.Job) error {
	switch job.Type {
	case queue.JobTypeAuditEvent:
		return h.handleAuditEvent(ctx, job)
	default:
		// unknown job types are dropped, not retried
		log.Warn().Str("job_id", job.ID).Msgf("unknown job type %q, dropping", job.Type)
		return nil
	}
}

func (h *JobHandler) handleAuditEvent(ctx context.Context, job queue.Job) error {
	var event entity.AuditEvent
	if err := json.Unmarshal(job.Payload, &event); err != nil {
		return fmt.Errorf("failed to unmarshal audit event payload: %w", err)
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if appErr := h.AuditRepo.SaveEvent(ctx, event); appErr != nil {
		return fmt.Errorf("failed to persist audit event: %s", appErr.Message)
	}

	return nil
}
