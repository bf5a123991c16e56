package usecase_test

import (
	"context"

	"health-tracker/internal/data/entity"
	"health-tracker/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the repository interfaces and the mail
// dispatcher, shared by the service tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithVerificationToken(ctx context.Context, user *entity.User, token *entity.VerificationToken) error {
	args := m.Called(ctx, user, token)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash, salt string) error {
	args := m.Called(ctx, id, passwordHash, salt)
	return args.Error(0)
}

type MockVerificationTokenRepository struct {
	mock.Mock
}

func (m *MockVerificationTokenRepository) FindByToken(ctx context.Context, token string) (*entity.VerificationToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VerificationToken), args.Error(1)
}

func (m *MockVerificationTokenRepository) Consume(ctx context.Context, token *entity.VerificationToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockResetPinRepository struct {
	mock.Mock
}

func (m *MockResetPinRepository) Create(ctx context.Context, pin *entity.ResetPin) error {
	args := m.Called(ctx, pin)
	return args.Error(0)
}

func (m *MockResetPinRepository) FindValidPin(ctx context.Context, pin string) (*entity.ResetPin, error) {
	args := m.Called(ctx, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ResetPin), args.Error(1)
}

func (m *MockResetPinRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) Create(ctx context.Context, person *entity.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Person, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Person), args.Error(1)
}

func (m *MockPersonRepository) UpdateWithPassword(ctx context.Context, person *entity.Person, pw *repository.PasswordChange) error {
	args := m.Called(ctx, person, pw)
	return args.Error(0)
}

type MockMailDispatcher struct {
	mock.Mock
}

func (m *MockMailDispatcher) SendConfirmation(email, username, verifyURL string) {
	m.Called(email, username, verifyURL)
}

func (m *MockMailDispatcher) SendPasswordPin(email, pin string) {
	m.Called(email, pin)
}
