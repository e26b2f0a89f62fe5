package auth_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/dtos/auth_dto"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/handlers"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/middleware"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/queue"
	auth_service "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/use-case/auth-case"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	State    *state.AppState
	Producer queue.Producer
	Validate *validator.Validate
	Service  auth_service.AuthServiceContract
}

func NewAuthHandler(appState *state.AppState) *AuthHandler {
	return &AuthHandler{
		State:    appState,
		Producer: queue.NewProducer(appState.Redis),
		Validate: validator.New(),
		Service:  auth_service.NewAuthService(appState),
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req auth_dto.LoginRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.Login(r.Context(), req)
	if err != nil {
		return err
	}

	reqID, ok := r.Context().Value(middleware.RequestIdKey).(string)
	if !ok {
		reqID = "unknown"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(handlers.CreateResponse("login successful", *resp, reqID))

	go handlers.EnqueueAuditEvent(h.State.Ctx, h.Producer, resp.User.ID, "user.login", resp.User.ID)

	return nil
}
