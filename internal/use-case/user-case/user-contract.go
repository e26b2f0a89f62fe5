package user_service

import (
	"context"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/dtos/user_dto"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
)

type UserServiceContract interface {
	List(ctx context.Context, query user_dto.ListUsersQuery) (*user_dto.UserListResponse, *app_error.AppError)
	GetByID(ctx context.Context, userId string) (*user_dto.UserResponse, *app_error.AppError)
	Create(ctx context.Context, req user_dto.CreateUserRequest) (*user_dto.UserResponse, *app_error.AppError)
	Update(ctx context.Context, userId string, req user_dto.UpdateUserRequest) (*user_dto.UserResponse, *app_error.AppError)
	Deactivate(ctx context.Context, userId string) *app_error.AppError
}
