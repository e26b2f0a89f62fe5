package audit_repo

import (
	"context"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/entity"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
)

type AuditRepoContract interface {
	SaveEvent(ctx context.Context, event entity.AuditEvent) *app_error.AppError
}
