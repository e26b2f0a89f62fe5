package user_handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/dtos/user_dto"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/handlers"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/middleware"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/queue"
	user_service "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/use-case/user-case"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type UserHandler struct {
	State    *state.AppState
	Producer queue.Producer
	Validate *validator.Validate
	Service  user_service.UserServiceContract
}

func NewUserHandler(appState *state.AppState) *UserHandler {
	return &UserHandler{
		State:    appState,
		Producer: queue.NewProducer(appState.Redis),
		Validate: validator.New(),
		Service:  user_service.NewUserService(appState),
	}
}

func parseListQuery(r *http.Request) user_dto.ListUsersQuery {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	return user_dto.ListUsersQuery{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	resp, err := h.Service.List(r.Context(), parseListQuery(r))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(handlers.CreateResponse("users fetched successfully", *resp, requestId(r)))

	return nil
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	userId := chi.URLParam(r, "userId")

	resp, err := h.Service.GetByID(r.Context(), userId)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(handlers.CreateResponse("user fetched successfully", *resp, requestId(r)))

	return nil
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req user_dto.CreateUserRequest
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.Create(r.Context(), req)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(handlers.CreateResponse("user created successfully", *resp, requestId(r)))

	h.enqueueAudit(r, "user.created", resp.ID)

	return nil
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	var req user_dto.UpdateUserRequest
	defer r.Body.Close()

	userId := chi.URLParam(r, "userId")

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, "Invalid JSON", "body")
	}

	if err := h.Validate.Struct(req); err != nil {
		return app_error.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid fields: %v", err), "validation")
	}

	resp, err := h.Service.Update(r.Context(), userId, req)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(handlers.CreateResponse("user updated successfully", *resp, requestId(r)))

	h.enqueueAudit(r, "user.updated", userId)

	return nil
}

func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) *app_error.AppError {
	userId := chi.URLParam(r, "userId")

	if err := h.Service.Deactivate(r.Context(), userId); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(handlers.CreateResponse("user deactivated", map[string]any{"id": userId}, requestId(r)))

	h.enqueueAudit(r, "user.deactivated", userId)

	return nil
}

func requestId(r *http.Request) string {
	reqID, ok := r.Context().Value(middleware.RequestIdKey).(string)
	if !ok {
		return "unknown"
	}
	return reqID
}

// enqueueAudit records the mutation on the audit queue after the
// response is written; failures are logged by the shared helper and
// never surface to the caller.
func (h *UserHandler) enqueueAudit(r *http.Request, action, targetId string) {
	actor := ""
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		actor = claims.Sub
	}

	go handlers.EnqueueAuditEvent(h.State.Ctx, h.Producer, actor, action, targetId)
}
