package adaptor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"health-tracker/internal/adaptor"
	"health-tracker/internal/dto/request"
	"health-tracker/internal/dto/response"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetPerson(ctx context.Context, username string) (*response.PersonResponse, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PersonResponse), args.Error(1)
}

func (m *MockProfileService) InsertDetails(ctx context.Context, username string, req *request.InsertDetailsRequest) (*response.PersonResponse, error) {
	args := m.Called(ctx, username, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PersonResponse), args.Error(1)
}

func (m *MockProfileService) UpdateDetails(ctx context.Context, username string, req *request.UpdateDetailsRequest) (*response.PersonResponse, error) {
	args := m.Called(ctx, username, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PersonResponse), args.Error(1)
}

func newProfileRouter(svc usecase.ProfileService) *chi.Mux {
	h := adaptor.NewProfileHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/person", func(r chi.Router) {
		r.Get("/", h.GetPerson)
		r.Post("/", h.InsertDetails)
		r.Put("/", h.UpdateDetails)
	})
	return r
}

func asUser(req *http.Request, username string) *http.Request {
	return req.WithContext(utils.SetUsernameContext(req.Context(), username))
}

func TestGetPersonHandler(t *testing.T) {
	svc := new(MockProfileService)
	svc.On("GetPerson", mock.Anything, "alice").Return(&response.PersonResponse{
		ID:        "b2c1a0e4-0000-0000-0000-000000000000",
		FirstName: "Alice",
		LastName:  "Smith",
		Gender:    "f",
		Birthday:  "1990-04-15",
		Height:    170,
		Weight:    60,
	}, nil)

	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/person", nil), "alice")
	newProfileRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"first_name":"Alice"`)
	assert.Contains(t, rec.Body.String(), `"birthday":"1990-04-15"`)
}

func TestGetPersonHandlerNullEnvelope(t *testing.T) {
	svc := new(MockProfileService)
	svc.On("GetPerson", mock.Anything, "alice").Return(nil, nil)

	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/person", nil), "alice")
	newProfileRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"person":null}`, rec.Body.String())
}

func TestGetPersonHandlerNoSubject(t *testing.T) {
	svc := new(MockProfileService)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/person", nil)
	newProfileRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"code":607,"field":"user"}`, rec.Body.String())
	svc.AssertNotCalled(t, "GetPerson", mock.Anything, mock.Anything)
}

func TestInsertDetailsHandlerInvalidGender(t *testing.T) {
	svc := new(MockProfileService)
	svc.On("InsertDetails", mock.Anything, "alice", mock.Anything).
		Return(nil, &usecase.ValidationError{Field: "gender"})

	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/person",
		strings.NewReader(`{"first_name":"Alice","last_name":"Smith","gender":"x","birthday":"1990-04-15","height":170,"weight":60}`)), "alice")
	newProfileRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"code":604,"field":"gender"}`, rec.Body.String())
}

func TestInsertDetailsHandlerCreated(t *testing.T) {
	svc := new(MockProfileService)
	svc.On("InsertDetails", mock.Anything, "alice", mock.MatchedBy(func(r *request.InsertDetailsRequest) bool {
		return r.Gender == "m" && r.Height == 160
	})).Return(&response.PersonResponse{
		FirstName: "Bob",
		Gender:    "m",
		Height:    160,
		Weight:    70,
	}, nil)

	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/person",
		strings.NewReader(`{"first_name":"Bob","last_name":"Smith","gender":"m","birthday":"1985-01-02","height":160,"weight":70}`)), "alice")
	newProfileRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"gender":"m"`)
}

func TestUpdateDetailsHandlerPersonMissing(t *testing.T) {
	svc := new(MockProfileService)
	svc.On("UpdateDetails", mock.Anything, "alice", mock.Anything).
		Return(nil, &usecase.NotFoundError{Entity: "person"})

	rec := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodPut, "/api/person",
		strings.NewReader(`{"weight":72.5}`)), "alice")
	newProfileRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":607,"field":"person"}`, rec.Body.String())
}
