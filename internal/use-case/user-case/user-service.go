package user_service

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/dtos/user_dto"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/entity"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
	user_repo "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/repo/user"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/utils"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	userCacheTTL    = 5 * time.Minute
	defaultUserRole = "STAFF"
)

type UserService struct {
	AppState *state.AppState
	UserRepo user_repo.UserRepoContract
}

func NewUserService(appState *state.AppState) UserServiceContract {
	return &UserService{
		AppState: appState,
		UserRepo: user_repo.NewUserRepo(appState),
	}
}

func userCacheKey(userId string) string {
	return fmt.Sprintf("user:%s", userId)
}

// List returns one page of active users plus the total size of the
// matching set. The page fetch and the count run concurrently over the
// same filter; neither depends on the other.
func (u *UserService) List(ctx context.Context, query user_dto.ListUsersQuery) (*user_dto.UserListResponse, *app_error.AppError) {
	skip := (query.Page - 1) * query.Limit

	filter := entity.UserFilter{
		ActiveOnly: true,
		Search:     query.Search,
	}

	var (
		users    []entity.User
		total    int64
		findErr  *app_error.AppError
		countErr *app_error.AppError
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		users, findErr = u.UserRepo.FindUsers(ctx, filter, skip, query.Limit)
	}()
	go func() {
		defer wg.Done()
		total, countErr = u.UserRepo.CountUsers(ctx, filter)
	}()
	wg.Wait()

	if findErr != nil {
		return nil, findErr
	}
	if countErr != nil {
		return nil, countErr
	}

	data := make([]user_dto.UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, ToUserResponse(&user))
	}

	return &user_dto.UserListResponse{
		Data: data,
		Pagination: user_dto.Pagination{
			Page:         query.Page,
			Limit:        query.Limit,
			TotalRecords: total,
			TotalPages:   int(math.Ceil(float64(total) / float64(query.Limit))),
		},
	}, nil
}

func (u *UserService) GetByID(ctx context.Context, userId string) (*user_dto.UserResponse, *app_error.AppError) {
	cacheKey := userCacheKey(userId)

	cached, cacheErr := utils.GetCacheData[user_dto.UserResponse](ctx, u.AppState.Redis, cacheKey)
	if cacheErr != nil {
		log.Warn().Msgf("user cache read failed: %s", cacheErr.Message)
	}
	if cached != nil {
		return cached, nil
	}

	user, err := u.UserRepo.FindUserByID(ctx, userId)
	if err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	if err := utils.SetCacheData(ctx, u.AppState.Redis, cacheKey, &resp, userCacheTTL); err != nil {
		log.Warn().Err(err).Msg("user cache write failed")
	}

	return &resp, nil
}

func (u *UserService) Create(ctx context.Context, req user_dto.CreateUserRequest) (*user_dto.UserResponse, *app_error.AppError) {
	hashed, hashErr := utils.GenerateHash(ctx, req.Password)
	if hashErr != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to hash password", "password")
	}

	role := req.Role
	if role == "" {
		role = defaultUserRole
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		ShopID:       req.ShopID,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
		Permissions:  req.Permissions,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := u.UserRepo.SaveUser(ctx, *user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

func (u *UserService) Update(ctx context.Context, userId string, req user_dto.UpdateUserRequest) (*user_dto.UserResponse, *app_error.AppError) {
	fields := map[string]any{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	user, err := u.UserRepo.UpdateUser(ctx, userId, fields)
	if err != nil {
		return nil, err
	}

	if err := utils.DeleteCacheData(ctx, u.AppState.Redis, userCacheKey(userId)); err != nil {
		log.Warn().Err(err).Msg("user cache invalidation failed")
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Deactivate soft-deletes the user. Deactivating an already-inactive
// user is not an error.
func (u *UserService) Deactivate(ctx context.Context, userId string) *app_error.AppError {
	if _, err := u.UserRepo.UpdateUser(ctx, userId, map[string]any{"is_active": false}); err != nil {
		return err
	}

	if err := utils.DeleteCacheData(ctx, u.AppState.Redis, userCacheKey(userId)); err != nil {
		log.Warn().Err(err).Msg("user cache invalidation failed")
	}

	return nil
}

func ToUserResponse(user *entity.User) user_dto.UserResponse {
	return user_dto.UserResponse{
		ID:          user.ID,
		ShopID:      user.ShopID,
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		Phone:       user.Phone,
		Role:        user.Role,
		Permissions: user.Permissions,
		IsActive:    user.IsActive,
		LastLogin:   user.LastLogin,
		CreatedAt:   user.CreatedAt,
	}
}
