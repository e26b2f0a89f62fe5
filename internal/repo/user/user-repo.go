package user_repo

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/entity"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
	"gorm.io/gorm"
)

type UserRepo struct {
	AppState *state.AppState
}

func NewUserRepo(appState *state.AppState) UserRepoContract {
	return &UserRepo{
		AppState: appState,
	}
}

// applyUserFilter translates the typed filter into SQL. The same
// translation backs both the page fetch and the count so the two reads
// stay consistent.
func applyUserFilter(query *gorm.DB, filter entity.UserFilter) *gorm.DB {
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ? OR full_name ILIKE ?", pattern, pattern, pattern)
	}

	return query
}

func (r *UserRepo) FindUsers(ctx context.Context, filter entity.UserFilter, skip, limit int) ([]entity.User, *app_error.AppError) {
	var users []entity.User

	query := applyUserFilter(r.AppState.DB.WithContext(ctx).Model(&entity.User{}), filter)

	err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, "unexpected error occur when fetch users", "db-find")
	}

	return users, nil
}

func (r *UserRepo) CountUsers(ctx context.Context, filter entity.UserFilter) (int64, *app_error.AppError) {
	var count int64

	query := applyUserFilter(r.AppState.DB.WithContext(ctx).Model(&entity.User{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, app_error.NewAppError(http.StatusInternalServerError, "unexpected error occur when count users", "db-count")
	}

	return count, nil
}

func (r *UserRepo) FindUserByID(ctx context.Context, userId string) (*entity.User, *app_error.AppError) {
	var user entity.User

	if err := r.AppState.DB.WithContext(ctx).Where("id = ?", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NewAppError(http.StatusNotFound, "User not found", "user-id")
		}
		return nil, app_error.NewAppError(http.StatusInternalServerError, "unexpected error occur when fetch user", "db-error")
	}

	return &user, nil
}

func (r *UserRepo) FindUserByUsername(ctx context.Context, username string) (*entity.User, *app_error.AppError) {
	var user entity.User

	if err := r.AppState.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NewAppError(http.StatusNotFound, "User not found", "user-credential")
		}
		return nil, app_error.NewAppError(http.StatusInternalServerError, "unexpected error occur when fetch user", "db-error")
	}

	return &user, nil
}

// SaveUser inserts a new user. Uniqueness on username/email is enforced
// by the store; a concurrent duplicate surfaces here as a conflict.
func (r *UserRepo) SaveUser(ctx context.Context, model entity.User) *app_error.AppError {
	if err := r.AppState.DB.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return app_error.NewAppError(http.StatusConflict, "username or email already registered", "credential-registered")
		}
		return app_error.NewAppError(http.StatusInternalServerError, "unexpected error occur when trying to create user", "db-create")
	}

	return nil
}

// UpdateUser applies a partial update. An empty field map still verifies
// existence so the caller gets a clean not-found.
func (r *UserRepo) UpdateUser(ctx context.Context, userId string, fields map[string]any) (*entity.User, *app_error.AppError) {
	var user entity.User

	if err := r.AppState.DB.WithContext(ctx).Where("id = ?", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NewAppError(http.StatusNotFound, "User not found", "user-id")
		}
		return nil, app_error.NewAppError(http.StatusInternalServerError, "unexpected error occur when fetch user", "db-error")
	}

	if len(fields) == 0 {
		return &user, nil
	}

	if err := r.AppState.DB.WithContext(ctx).Model(&user).Updates(fields).Error; err != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, "unexpected error occur when updating user", "db-update")
	}

	return &user, nil
}

func (r *UserRepo) TouchLastLogin(ctx context.Context, userId string, at time.Time) *app_error.AppError {
	err := r.AppState.DB.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userId).Update("last_login", at).Error
	if err != nil {
		return app_error.NewAppError(http.StatusInternalServerError, "unexpected error occur when recording last login", "db-update")
	}

	return nil
}
