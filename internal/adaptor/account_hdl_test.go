package adaptor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"health-tracker/internal/adaptor"
	"health-tracker/internal/dto/request"
	"health-tracker/internal/dto/response"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, req *request.LoginRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) Verify(ctx context.Context, emailToken string) bool {
	args := m.Called(ctx, emailToken)
	return args.Bool(0)
}

func (m *MockAccountService) RequestPasswordChange(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAccountService) UpdatePassword(ctx context.Context, req *request.UpdatePasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func newAccountRouter(svc usecase.AccountService) *chi.Mux {
	config := &utils.Config{
		App: utils.AppConfig{FrontendURL: "http://frontend.test"},
	}
	h := adaptor.NewAccountHandler(svc, config, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Get("/verify/{token}", h.Verify)
		r.Post("/password/request", h.RequestPasswordChange)
		r.Post("/password", h.UpdatePassword)
	})
	return r
}

func TestRegisterHandlerCreated(t *testing.T) {
	svc := new(MockAccountService)
	svc.On("Register", mock.Anything, mock.Anything).Return(&response.UserResponse{
		ID:        "c7a3f0d2-0000-0000-0000-000000000000",
		Username:  "alice",
		Email:     "alice@example.com",
		Enabled:   false,
		CreatedAt: time.Now(),
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"secret123"}`))
	newAccountRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body response.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.User.Username)
	assert.False(t, body.User.Enabled)
}

func TestRegisterHandlerDuplicate(t *testing.T) {
	svc := new(MockAccountService)
	svc.On("Register", mock.Anything, mock.Anything).
		Return(nil, &usecase.DuplicateError{Field: "username"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"secret123"}`))
	newAccountRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"code":602,"field":"username"}`, rec.Body.String())
}

func TestRegisterHandlerMalformedBody(t *testing.T) {
	svc := new(MockAccountService)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{not json`))
	newAccountRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"code":604,"field":"body"}`, rec.Body.String())
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLoginHandlerToken(t *testing.T) {
	svc := new(MockAccountService)
	svc.On("Login", mock.Anything, mock.Anything).Return("signed.jwt.token", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"alice","password":"secret123"}`))
	newAccountRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.token"}`, rec.Body.String())
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	svc := new(MockAccountService)
	svc.On("Login", mock.Anything, mock.Anything).Return("", usecase.ErrInvalidCredentials)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"alice","password":"wrong"}`))
	newAccountRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"code":605,"field":"login"}`, rec.Body.String())
}

func TestVerifyHandlerRedirect(t *testing.T) {
	tests := []struct {
		name     string
		verified bool
		want     string
	}{
		{"valid token", true, "http://frontend.test/login?verified=true"},
		{"invalid token", false, "http://frontend.test/login?verified=false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAccountService)
			svc.On("Verify", mock.Anything, "sometoken").Return(tt.verified)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/verify/sometoken", nil)
			newAccountRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestRequestPasswordChangeHandlerUnknownEmail(t *testing.T) {
	svc := new(MockAccountService)
	svc.On("RequestPasswordChange", mock.Anything, "ghost@example.com").
		Return(&usecase.NotFoundError{Entity: "email"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password/request",
		strings.NewReader(`{"email":"ghost@example.com"}`))
	newAccountRouter(svc).ServeHTTP(rec, req)

	// Unknown address answers 409, not 404.
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"code":607,"field":"email"}`, rec.Body.String())
}

func TestUpdatePasswordHandlerInvalidPin(t *testing.T) {
	svc := new(MockAccountService)
	svc.On("UpdatePassword", mock.Anything, mock.Anything).Return(usecase.ErrInvalidPin)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password",
		strings.NewReader(`{"pin":"000000","password":"newsecret"}`))
	newAccountRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"code":606,"field":"pin"}`, rec.Body.String())
}

func TestUpdatePasswordHandlerWeakPassword(t *testing.T) {
	svc := new(MockAccountService)
	svc.On("UpdatePassword", mock.Anything, mock.Anything).
		Return(&usecase.ValidationError{Field: "password"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password",
		strings.NewReader(`{"pin":"123456","password":"abc"}`))
	newAccountRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"code":604,"field":"password"}`, rec.Body.String())
}
