package user_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"devpulse/internal/http/api"
	"devpulse/internal/http/handlers"
	"devpulse/internal/http/handlers/mocks"
	"devpulse/internal/http/handlers/user"
	repo "devpulse/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Create

func TestUserHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	fcmToken := "fcm-token"
	reqBody := user.CreateUserRequest{
		GithubID:    "12345",
		AccessToken: "gho_token",
		FcmToken:    &fcmToken,
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expectedUser := &api.UserSchema{
		ID:       uuid.NewString(),
		GithubID: "12345",
		FcmToken: &fcmToken,
	}
	mockService.On("Create", mock.Anything, "12345", "gho_token", &fcmToken).Return(expectedUser, nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.UserSchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expectedUser, resp)
}

func TestUserHandler_Create_BadJSON(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte("{invalid json")))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestUserHandler_Create_ValidationError(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	reqBody := user.CreateUserRequest{
		GithubID: "12345", // access_token missing
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestUserHandler_Create_UserExists(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	reqBody := user.CreateUserRequest{
		GithubID:    "12345",
		AccessToken: "gho_token",
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, "12345", "gho_token", (*string)(nil)).
		Return(nil, repo.ErrUserExists)

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeUserExists, resp.Error.Code)
}

func TestUserHandler_Create_InternalError(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	reqBody := user.CreateUserRequest{
		GithubID:    "12345",
		AccessToken: "gho_token",
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, "12345", "gho_token", (*string)(nil)).
		Return(nil, errors.New("db error"))

	h.Create(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

// Get

func newGetRouter(h *user.UserHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/users/{user_id}", h.Get)
	return r
}

func TestUserHandler_Get_Success(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	userID := uuid.New()
	expectedUser := &api.UserSchema{ID: userID.String(), GithubID: "12345"}
	mockService.On("Get", mock.Anything, userID).Return(expectedUser, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
	w := httptest.NewRecorder()
	newGetRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UserSchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expectedUser, resp)
}

func TestUserHandler_Get_InvalidID(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
	w := httptest.NewRecorder()
	newGetRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	userID := uuid.New()
	mockService.On("Get", mock.Anything, userID).Return(nil, repo.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
	w := httptest.NewRecorder()
	newGetRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

// List

func TestUserHandler_List_DefaultPagination(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	expected := []api.UserSchema{{ID: uuid.NewString(), GithubID: "12345"}}
	mockService.On("List", mock.Anything, 0, 100).Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []api.UserSchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
}

func TestUserHandler_List_CustomPagination(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	mockService.On("List", mock.Anything, 20, 10).Return([]api.UserSchema{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users?skip=20&limit=10", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
