package repository

import (
	"context"
	"fmt"

	"health-tracker/internal/data/entity"
	"health-tracker/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PasswordChange carries an optional re-hashed credential applied in the
// same transaction as a profile update.
type PasswordChange struct {
	UserID       uuid.UUID
	PasswordHash string
	Salt         string
}

type PersonRepository interface {
	Create(ctx context.Context, person *entity.Person) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Person, error)
	UpdateWithPassword(ctx context.Context, person *entity.Person, pw *PasswordChange) error
}

type personRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPersonRepository(db database.PgxIface, log *zap.Logger) PersonRepository {
	return &personRepository{
		db:  db,
		log: log.With(zap.String("repository", "person")),
	}
}

func (pr *personRepository) Create(ctx context.Context, person *entity.Person) error {
	query := `
		INSERT INTO persons (id, user_id, first_name, last_name, gender,
		                     birthday, height, weight, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := pr.db.Exec(ctx, query,
		person.ID,
		person.UserID,
		person.FirstName,
		person.LastName,
		person.Gender,
		person.Birthday,
		person.Height,
		person.Weight,
		person.CreatedAt,
		person.UpdatedAt,
	)

	if err != nil {
		if dup := translateUniqueViolation(err); dup != nil {
			return dup
		}
		pr.log.Error("Failed to create person",
			zap.Error(err),
			zap.String("user_id", person.UserID.String()),
		)
		return fmt.Errorf("create person for user %s: %w", person.UserID.String(), err)
	}

	return nil
}

func (pr *personRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Person, error) {
	query := `
		SELECT id, user_id, first_name, last_name, gender,
		       birthday, height, weight, created_at, updated_at
		FROM persons
		WHERE user_id = $1
	`

	var person entity.Person
	err := pr.db.QueryRow(ctx, query, userID).Scan(
		&person.ID,
		&person.UserID,
		&person.FirstName,
		&person.LastName,
		&person.Gender,
		&person.Birthday,
		&person.Height,
		&person.Weight,
		&person.CreatedAt,
		&person.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find person",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find person for user %s: %w", userID.String(), err)
	}

	return &person, nil
}

// UpdateWithPassword persists the merged person and, when pw is non-nil,
// the re-hashed user credential in one transaction.
func (pr *personRepository) UpdateWithPassword(ctx context.Context, person *entity.Person, pw *PasswordChange) error {
	tx, err := pr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update tx: %w", err)
	}
	defer tx.Rollback(ctx)

	personQuery := `
		UPDATE persons
		SET first_name = $2, last_name = $3, gender = $4,
		    birthday = $5, height = $6, weight = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, personQuery,
		person.ID,
		person.FirstName,
		person.LastName,
		person.Gender,
		person.Birthday,
		person.Height,
		person.Weight,
		person.UpdatedAt,
	)
	if err != nil {
		pr.log.Error("Failed to update person",
			zap.Error(err),
			zap.String("person_id", person.ID.String()),
		)
		return fmt.Errorf("update person %s: %w", person.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("person %s not found", person.ID.String())
	}

	if pw != nil {
		pwQuery := `
			UPDATE users
			SET password_hash = $2, salt = $3, updated_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL
		`
		if _, err := tx.Exec(ctx, pwQuery, pw.UserID, pw.PasswordHash, pw.Salt); err != nil {
			pr.log.Error("Failed to update password with profile",
				zap.Error(err),
				zap.String("user_id", pw.UserID.String()),
			)
			return fmt.Errorf("update password for %s: %w", pw.UserID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update tx: %w", err)
	}

	return nil
}
