package auth_service

import (
	"context"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/dtos/auth_dto"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
)

type AuthServiceContract interface {
	Login(ctx context.Context, req auth_dto.LoginRequest) (*auth_dto.LoginResponse, *app_error.AppError)
}
