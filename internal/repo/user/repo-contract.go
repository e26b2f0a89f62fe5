package user_repo

import (
	"context"
	"time"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/entity"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
)

type UserRepoContract interface {
	FindUsers(ctx context.Context, filter entity.UserFilter, skip, limit int) ([]entity.User, *app_error.AppError)
	CountUsers(ctx context.Context, filter entity.UserFilter) (int64, *app_error.AppError)
	FindUserByID(ctx context.Context, userId string) (*entity.User, *app_error.AppError)
	FindUserByUsername(ctx context.Context, username string) (*entity.User, *app_error.AppError)
	SaveUser(ctx context.Context, model entity.User) *app_error.AppError
	UpdateUser(ctx context.Context, userId string, fields map[string]any) (*entity.User, *app_error.AppError)
	TouchLastLogin(ctx context.Context, userId string, at time.Time) *app_error.AppError
}
