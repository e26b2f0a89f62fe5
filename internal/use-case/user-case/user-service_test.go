package user_service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/dtos/user_dto"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/entity"
	app_error "github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/errors"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/utils"
	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/state"
	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo records calls so the service orchestration can be tested
// without a database.
type fakeUserRepo struct {
	users []entity.User
	total int64

	findErr  *app_error.AppError
	countErr *app_error.AppError
	saveErr  *app_error.AppError

	lastFilter   entity.UserFilter
	lastSkip     int
	lastLimit    int
	savedUser    *entity.User
	lastFields   map[string]any
	findByIDHits int
	updateTarget *entity.User
}

func (f *fakeUserRepo) FindUsers(ctx context.Context, filter entity.UserFilter, skip, limit int) ([]entity.User, *app_error.AppError) {
	f.lastFilter = filter
	f.lastSkip = skip
	f.lastLimit = limit
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users, nil
}

func (f *fakeUserRepo) CountUsers(ctx context.Context, filter entity.UserFilter) (int64, *app_error.AppError) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, userId string) (*entity.User, *app_error.AppError) {
	f.findByIDHits++
	for i := range f.users {
		if f.users[i].ID == userId {
			return &f.users[i], nil
		}
	}
	return nil, app_error.NewAppError(http.StatusNotFound, "User not found", "user-id")
}

func (f *fakeUserRepo) FindUserByUsername(ctx context.Context, username string) (*entity.User, *app_error.AppError) {
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, app_error.NewAppError(http.StatusNotFound, "User not found", "user-credential")
}

func (f *fakeUserRepo) SaveUser(ctx context.Context, model entity.User) *app_error.AppError {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedUser = &model
	return nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, userId string, fields map[string]any) (*entity.User, *app_error.AppError) {
	f.lastFields = fields
	if f.updateTarget == nil {
		return nil, app_error.NewAppError(http.StatusNotFound, "User not found", "user-id")
	}
	if v, ok := fields["is_active"]; ok {
		f.updateTarget.IsActive = v.(bool)
	}
	return f.updateTarget, nil
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, userId string, at time.Time) *app_error.AppError {
	return nil
}

func newTestService(t *testing.T, repo *fakeUserRepo) *UserService {
	t.Helper()

	mockRedis := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mockRedis.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return &UserService{
		AppState: &state.AppState{Redis: rdb},
		UserRepo: repo,
	}
}

func TestList_PaginationMath(t *testing.T) {
	repo := &fakeUserRepo{total: 25}
	svc := newTestService(t, repo)

	resp, err := svc.List(context.Background(), user_dto.ListUsersQuery{Page: 2, Limit: 10, Search: "jones"})

	require.Nil(t, err)
	assert.Equal(t, 10, repo.lastSkip, "skip = (page-1)*limit")
	assert.Equal(t, 10, repo.lastLimit)
	assert.True(t, repo.lastFilter.ActiveOnly, "default listing excludes deactivated users")
	assert.Equal(t, "jones", repo.lastFilter.Search)
	assert.Equal(t, int64(25), resp.Pagination.TotalRecords)
	assert.Equal(t, 3, resp.Pagination.TotalPages, "totalPages = ceil(25/10)")
	assert.Equal(t, 2, resp.Pagination.Page)
}

func TestList_NeverExposesPasswordHash(t *testing.T) {
	repo := &fakeUserRepo{
		users: []entity.User{{ID: "u-1", Username: "alice", Email: "a@x.com", PasswordHash: "digest", IsActive: true}},
		total: 1,
	}
	svc := newTestService(t, repo)

	resp, err := svc.List(context.Background(), user_dto.ListUsersQuery{Page: 1, Limit: 10})

	require.Nil(t, err)
	require.Len(t, resp.Data, 1)
	// UserResponse has no hash field; make sure nothing else leaks it
	assert.Equal(t, "alice", resp.Data[0].Username)
}

func TestList_RepoErrorPropagates(t *testing.T) {
	repo := &fakeUserRepo{countErr: app_error.NewAppError(http.StatusInternalServerError, "boom", "db-count")}
	svc := newTestService(t, repo)

	_, err := svc.List(context.Background(), user_dto.ListUsersQuery{Page: 1, Limit: 10})

	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.Code)
}

func TestCreate_HashesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(t, repo)

	req := user_dto.CreateUserRequest{
		ShopID:   "shop-1",
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		Password: "plaintext-password",
		FullName: gofakeit.Name(),
	}

	resp, err := svc.Create(context.Background(), req)

	require.Nil(t, err)
	require.NotNil(t, repo.savedUser)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.NotEqual(t, "plaintext-password", repo.savedUser.PasswordHash)

	match, verr := utils.VerifyHash(context.Background(), repo.savedUser.PasswordHash, "plaintext-password")
	require.NoError(t, verr)
	assert.True(t, match)

	assert.Equal(t, "STAFF", repo.savedUser.Role, "role defaults when absent")
	assert.True(t, repo.savedUser.IsActive, "new users start active")
}

func TestCreate_ConflictPropagates(t *testing.T) {
	repo := &fakeUserRepo{saveErr: app_error.NewAppError(http.StatusConflict, "username or email already registered", "credential-registered")}
	svc := newTestService(t, repo)

	_, err := svc.Create(context.Background(), user_dto.CreateUserRequest{
		ShopID:   "shop-1",
		Username: "alice",
		Email:    "alice@x.com",
		Password: "password1",
	})

	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.Code)
}

func TestUpdate_PartialFieldsOnly(t *testing.T) {
	repo := &fakeUserRepo{updateTarget: &entity.User{ID: "u-1", Username: "alice", IsActive: true}}
	svc := newTestService(t, repo)

	phone := "555-0100"
	_, err := svc.Update(context.Background(), "u-1", user_dto.UpdateUserRequest{Phone: &phone})

	require.Nil(t, err)
	assert.Equal(t, map[string]any{"phone": "555-0100"}, repo.lastFields, "absent fields must be left unchanged")
}

func TestDeactivate_Idempotent(t *testing.T) {
	repo := &fakeUserRepo{updateTarget: &entity.User{ID: "u-1", Username: "alice", IsActive: true}}
	svc := newTestService(t, repo)

	require.Nil(t, svc.Deactivate(context.Background(), "u-1"))
	assert.False(t, repo.updateTarget.IsActive)

	// second call is not an error
	require.Nil(t, svc.Deactivate(context.Background(), "u-1"))
	assert.False(t, repo.updateTarget.IsActive)
}

func TestDeactivate_NotFound(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(t, repo)

	err := svc.Deactivate(context.Background(), "missing")

	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Code)
}

func TestGetByID_ReadThroughCache(t *testing.T) {
	repo := &fakeUserRepo{
		users: []entity.User{{ID: "u-1", Username: "alice", Email: "a@x.com", IsActive: true, CreatedAt: time.Now()}},
	}
	svc := newTestService(t, repo)

	first, err := svc.GetByID(context.Background(), "u-1")
	require.Nil(t, err)
	assert.Equal(t, "alice", first.Username)
	assert.Equal(t, 1, repo.findByIDHits)

	second, err := svc.GetByID(context.Background(), "u-1")
	require.Nil(t, err)
	assert.Equal(t, "alice", second.Username)
	assert.Equal(t, 1, repo.findByIDHits, "second read must come from cache")
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(t, repo)

	_, err := svc.GetByID(context.Background(), "missing")

	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Code)
}
