package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"health-tracker/internal/data/entity"
	"health-tracker/internal/data/repository"
	"health-tracker/internal/dto/request"
	"health-tracker/internal/dto/response"
	"health-tracker/pkg/token"
	"health-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (string, error)
	Verify(ctx context.Context, emailToken string) bool
	RequestPasswordChange(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, req *request.UpdatePasswordRequest) error
}

type accountService struct {
	repo   *repository.Repository
	config *utils.Config
	issuer *token.Issuer
	mail   MailDispatcher
	events EventPublisher
	log    *zap.Logger
}

func NewAccountService(
	repo *repository.Repository,
	config *utils.Config,
	issuer *token.Issuer,
	mail MailDispatcher,
	events EventPublisher,
	log *zap.Logger,
) AccountService {
	return &accountService{
		repo:   repo,
		config: config,
		issuer: issuer,
		mail:   mail,
		events: events,
		log:    log,
	}
}

func (s *accountService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		field, _ := utils.FirstInvalidField(req)
		return nil, &ValidationError{Field: field}
	}

	// 2. Pre-check uniqueness. This check-then-act is racy on its own; the
	// unique constraints on users are the authoritative guard and their
	// violations are translated below.
	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, &DuplicateError{Field: "username"}
	}

	existing, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, &DuplicateError{Field: "email"}
	}

	// 3. Hash password with a fresh salt
	salt, err := utils.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(req.Password, salt)
	if err != nil {
		return nil, err
	}

	// 4. Build user (disabled until verified) and verification token
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Salt:         salt,
		Enabled:      false,
	}

	tokenString, err := utils.GenerateVerificationToken()
	if err != nil {
		return nil, err
	}
	verification := &entity.VerificationToken{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     tokenString,
		ExpiresAt: now.Add(time.Duration(s.config.Token.VerificationExpiryHours) * time.Hour),
	}

	// 5. Persist both in one transaction
	if err := s.repo.User.CreateWithVerificationToken(ctx, user, verification); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, &DuplicateError{Field: "username"}
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, &DuplicateError{Field: "email"}
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	// 6. Hand the confirmation mail to the dispatcher, off the request path
	verifyURL := fmt.Sprintf("%s/api/auth/verify/%s", s.config.App.BaseURL, tokenString)
	s.mail.SendConfirmation(user.Email, user.Username, verifyURL)

	s.publishEvent("user.registered", map[string]any{
		"user_id":  user.ID.String(),
		"username": user.Username,
	})

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *accountService) Login(ctx context.Context, req *request.LoginRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return "", ErrInvalidCredentials
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("username", req.Username))
		return "", fmt.Errorf("find user: %w", err)
	}

	// Unknown user and bad password are indistinguishable to the caller.
	if user == nil {
		s.log.Warn("Login for unknown username", zap.String("username", req.Username))
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.Salt, user.PasswordHash) {
		s.log.Warn("Login with wrong password", zap.String("username", req.Username))
		return "", ErrInvalidCredentials
	}

	sessionToken, err := s.issuer.Issue(user.Username)
	if err != nil {
		s.log.Error("Failed to issue session token", zap.Error(err), zap.String("username", req.Username))
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("username", user.Username))
	return sessionToken, nil
}

// Verify looks up the mailed token and enables the owning account. False
// for unknown or expired tokens. Consuming deletes the token, so a second
// call with the same token finds nothing and returns false.
func (s *accountService) Verify(ctx context.Context, emailToken string) bool {
	verification, err := s.repo.VerificationToken.FindByToken(ctx, emailToken)
	if err != nil {
		s.log.Error("Failed to look up verification token", zap.Error(err))
		return false
	}
	if verification == nil {
		return false
	}

	// An expired token must never enable the account.
	if time.Now().After(verification.ExpiresAt) {
		s.log.Warn("Expired verification token",
			zap.String("user_id", verification.UserID.String()),
			zap.Time("expired_at", verification.ExpiresAt))
		return false
	}

	if err := s.repo.VerificationToken.Consume(ctx, verification); err != nil {
		s.log.Error("Failed to consume verification token", zap.Error(err))
		return false
	}

	s.publishEvent("user.verified", map[string]any{
		"user_id": verification.UserID.String(),
	})

	s.log.Info("User verified", zap.String("user_id", verification.UserID.String()))
	return true
}

func (s *accountService) RequestPasswordChange(ctx context.Context, email string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for password change", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return &NotFoundError{Entity: "email"}
	}

	pinCode, err := utils.GeneratePin(6)
	if err != nil {
		return err
	}

	now := time.Now()
	pin := &entity.ResetPin{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Email:     email,
		Pin:       pinCode,
		ExpiresAt: now.Add(time.Duration(s.config.Token.PinExpiryMinutes) * time.Minute),
	}

	if err := s.repo.ResetPin.Create(ctx, pin); err != nil {
		s.log.Error("Failed to create reset pin", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("create reset pin: %w", err)
	}

	s.mail.SendPasswordPin(email, pinCode)

	s.log.Info("Password change requested", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *accountService) UpdatePassword(ctx context.Context, req *request.UpdatePasswordRequest) error {
	pin, err := s.repo.ResetPin.FindValidPin(ctx, req.Pin)
	if err != nil {
		s.log.Error("Failed to look up reset pin", zap.Error(err))
		return fmt.Errorf("find reset pin: %w", err)
	}
	if pin == nil {
		return ErrInvalidPin
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update password validation failed", zap.Any("errors", errs))
		return &ValidationError{Field: "password"}
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(req.Password, salt)
	if err != nil {
		return err
	}

	if err := s.repo.User.UpdatePassword(ctx, pin.UserID, hash, salt); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", pin.UserID.String()))
		return fmt.Errorf("update password: %w", err)
	}

	// Pin is single-use.
	if err := s.repo.ResetPin.Delete(ctx, pin.ID); err != nil {
		s.log.Warn("Failed to delete used reset pin", zap.Error(err), zap.String("pin_id", pin.ID.String()))
	}

	s.publishEvent("password.changed", map[string]any{
		"user_id": pin.UserID.String(),
	})

	s.log.Info("Password updated", zap.String("user_id", pin.UserID.String()))
	return nil
}

func (s *accountService) publishEvent(event string, payload map[string]any) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishAccountEvent(event, payload); err != nil {
		s.log.Warn("Failed to publish account event", zap.Error(err), zap.String("event", event))
	}
}
