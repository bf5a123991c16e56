package repository

import (
	"health-tracker/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User              UserRepository
	Person            PersonRepository
	VerificationToken VerificationTokenRepository
	ResetPin          ResetPinRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:              NewUserRepository(db, log),
		Person:            NewPersonRepository(db, log),
		VerificationToken: NewVerificationTokenRepository(db, log),
		ResetPin:          NewResetPinRepository(db, log),
	}
}
