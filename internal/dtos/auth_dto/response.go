package auth_dto

import (
	"time"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/dtos/user_dto"
)

type LoginResponse struct {
	Token     string                `json:"token"`
	ExpiresAt time.Time             `json:"expires_at"`
	User      user_dto.UserResponse `json:"user"`
}
