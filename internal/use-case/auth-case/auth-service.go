package auth_service

import (
	"context"
	"net/http"
	"time"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/config"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/dtos/auth_dto"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
	user_repo "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/repo/user"
	user_service "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/use-case/user-case"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/utils"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
	"github.com/rs/zerolog/log"
)

type AuthService struct {
	AppState *state.AppState
	UserRepo user_repo.UserRepoContract
}

func NewAuthService(appState *state.AppState) AuthServiceContract {
	return &AuthService{
		AppState: appState,
		UserRepo: user_repo.NewUserRepo(appState),
	}
}

// Login verifies the credential pair and issues a signed token carrying
// the user's role and permission set. Unknown username, wrong password
// and deactivated account are indistinguishable to the caller.
func (a *AuthService) Login(ctx context.Context, req auth_dto.LoginRequest) (*auth_dto.LoginResponse, *app_error.AppError) {
	invalidCredential := app_error.NewAppError(http.StatusUnauthorized, "invalid username or password", "credential")

	user, err := a.UserRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if err.Code == http.StatusNotFound {
			return nil, invalidCredential
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, invalidCredential
	}

	match, verifyErr := utils.VerifyHash(ctx, user.PasswordHash, req.Password)
	if verifyErr != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to verify password", "password")
	}
	if !match {
		return nil, invalidCredential
	}

	ttl := time.Duration(config.Conf.AUTH.TokenTTLMinute) * time.Minute
	claims := utils.NewUserClaims(user.ID, user.Role, user.Permissions, ttl)

	token, signErr := utils.GenerateSign(claims, a.AppState.JwtSecret)
	if signErr != nil {
		return nil, app_error.NewAppError(http.StatusInternalServerError, "failed to issue token", "token")
	}

	now := time.Now()
	if touchErr := a.UserRepo.TouchLastLogin(ctx, user.ID, now); touchErr != nil {
		// best-effort: a failed lastLogin write must not fail the login
		log.Warn().Msgf("failed to record last login for %s: %s", user.ID, touchErr.Message)
	}
	user.LastLogin = &now

	return &auth_dto.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user_service.ToUserResponse(user),
	}, nil
}
