package audit_repo

import (
	"context"
	"net/http"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/entity"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
)

type AuditRepo struct {
	AppState *state.AppState
}

func NewAuditRepo(appState *state.AppState) AuditRepoContract {
	return &AuditRepo{
		AppState: appState,
	}
}

func (r *AuditRepo) SaveEvent(ctx context.Context, event entity.AuditEvent) *app_error.AppError {
	if err := r.AppState.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, "unexpected error occur when trying to persist audit event", "db-create")
	}

	return nil
}
