package handlers

import (
	"context"
	"time"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/entity"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/queue"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const auditJobTTL = 24 * time.Hour

// EnqueueAuditEvent pushes an audit record onto the worker queue. The
// write is asynchronous and best-effort: a queue failure is logged and
// never fails the request that triggered it.
func EnqueueAuditEvent(ctx context.Context, producer queue.Producer, actorId, action, targetId string) {
	event := entity.AuditEvent{
		ID:       uuid.New().String(),
		ActorID:  actorId,
		Action:   action,
		TargetID: targetId,
	}

	now := time.Now()
	job := queue.Job{
		ID:        uuid.New().String(),
		Type:      queue.JobTypeAuditEvent,
		Payload:   queue.MustMarshal(event),
		Priority:  1,
		Retry:     0,
		MaxRetry:  5,
		CreatedAt: now.Unix(),
		ExpireAt:  now.Add(auditJobTTL).Unix(),
	}

	if err := producer.Enqueue(ctx, job); err != nil {
		log.Error().Err(err).Str("action", action).Msg("Failed to enqueue audit event")
	}
}
