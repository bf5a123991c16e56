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
	"health-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const birthdayLayout = "2006-01-02"

type ProfileService interface {
	GetPerson(ctx context.Context, username string) (*response.PersonResponse, error)
	InsertDetails(ctx context.Context, username string, req *request.InsertDetailsRequest) (*response.PersonResponse, error)
	UpdateDetails(ctx context.Context, username string, req *request.UpdateDetailsRequest) (*response.PersonResponse, error)
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log,
	}
}

// GetPerson returns the user's person record, or nil when no details were
// inserted yet. The nil result is not an error: the envelope renders it as
// an explicit "person": null.
func (ps *profileService) GetPerson(ctx context.Context, username string) (*response.PersonResponse, error) {
	user, err := ps.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	person, err := ps.repo.Person.FindByUserID(ctx, user.ID)
	if err != nil {
		ps.log.Error("Failed to find person", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("find person: %w", err)
	}
	if person == nil {
		return nil, nil
	}

	return response.PersonToResponse(person), nil
}

func (ps *profileService) InsertDetails(ctx context.Context, username string, req *request.InsertDetailsRequest) (*response.PersonResponse, error) {
	// Validate before touching persistence.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Insert details validation failed", zap.Any("errors", errs))
		field, _ := utils.FirstInvalidField(req)
		return nil, &ValidationError{Field: field}
	}

	birthday, err := time.Parse(birthdayLayout, req.Birthday)
	if err != nil {
		return nil, &ValidationError{Field: "birthday"}
	}

	user, err := ps.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	person := &entity.Person{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    user.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    entity.Gender(req.Gender),
		Birthday:  birthday,
		Height:    req.Height,
		Weight:    req.Weight,
	}

	if err := ps.repo.Person.Create(ctx, person); err != nil {
		if errors.Is(err, repository.ErrDuplicatePerson) {
			return nil, &DuplicateError{Field: "person"}
		}
		ps.log.Error("Failed to create person", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("create person: %w", err)
	}

	ps.log.Info("Person details inserted",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username))

	return response.PersonToResponse(person), nil
}

func (ps *profileService) UpdateDetails(ctx context.Context, username string, req *request.UpdateDetailsRequest) (*response.PersonResponse, error) {
	// Nil pointers mean "leave unchanged"; set pointers are range-checked.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Update details validation failed", zap.Any("errors", errs))
		field, _ := utils.FirstInvalidField(req)
		return nil, &ValidationError{Field: field}
	}

	user, err := ps.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	person, err := ps.repo.Person.FindByUserID(ctx, user.ID)
	if err != nil {
		ps.log.Error("Failed to find person", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("find person: %w", err)
	}
	if person == nil {
		return nil, &NotFoundError{Entity: "person"}
	}

	if req.FirstName != nil {
		person.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		person.LastName = *req.LastName
	}
	if req.Gender != nil {
		person.Gender = entity.Gender(*req.Gender)
	}
	if req.Birthday != nil {
		birthday, err := time.Parse(birthdayLayout, *req.Birthday)
		if err != nil {
			return nil, &ValidationError{Field: "birthday"}
		}
		person.Birthday = birthday
	}
	if req.Height != nil {
		person.Height = *req.Height
	}
	if req.Weight != nil {
		person.Weight = *req.Weight
	}
	person.UpdatedAt = time.Now()

	// Optional password change rides in the same transaction.
	var pw *repository.PasswordChange
	if req.Password != nil {
		salt, err := utils.GenerateSalt()
		if err != nil {
			return nil, err
		}
		hash, err := utils.HashPassword(*req.Password, salt)
		if err != nil {
			return nil, err
		}
		pw = &repository.PasswordChange{
			UserID:       user.ID,
			PasswordHash: hash,
			Salt:         salt,
		}
	}

	if err := ps.repo.Person.UpdateWithPassword(ctx, person, pw); err != nil {
		ps.log.Error("Failed to update person", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("update person: %w", err)
	}

	ps.log.Info("Person details updated",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username),
		zap.Bool("password_changed", pw != nil))

	return response.PersonToResponse(person), nil
}

// findUser resolves the token subject to a user row. A missing user means
// the token outlived its account.
func (ps *profileService) findUser(ctx context.Context, username string) (*entity.User, error) {
	if username == "" {
		return nil, &NotFoundError{Entity: "user"}
	}

	user, err := ps.repo.User.FindByUsername(ctx, username)
	if err != nil {
		ps.log.Error("Failed to find user", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "user"}
	}

	return user, nil
}
