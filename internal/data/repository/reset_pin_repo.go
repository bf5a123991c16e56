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

type ResetPinRepository interface {
	Create(ctx context.Context, pin *entity.ResetPin) error
	FindValidPin(ctx context.Context, pin string) (*entity.ResetPin, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resetPinRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResetPinRepository(db database.PgxIface, log *zap.Logger) ResetPinRepository {
	return &resetPinRepository{
		db:  db,
		log: log.With(zap.String("repository", "reset_pin")),
	}
}

func (rr *resetPinRepository) Create(ctx context.Context, pin *entity.ResetPin) error {
	query := `
		INSERT INTO reset_pins (id, user_id, email, pin, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := rr.db.Exec(ctx, query,
		pin.ID,
		pin.UserID,
		pin.Email,
		pin.Pin,
		pin.ExpiresAt,
		pin.CreatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to create reset pin",
			zap.Error(err),
			zap.String("email", pin.Email),
		)
		return fmt.Errorf("create reset pin for %s: %w", pin.Email, err)
	}

	return nil
}

func (rr *resetPinRepository) FindValidPin(ctx context.Context, pin string) (*entity.ResetPin, error) {
	query := `
		SELECT id, user_id, email, pin, expires_at, created_at
		FROM reset_pins
		WHERE pin = $1 AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var rp entity.ResetPin
	err := rr.db.QueryRow(ctx, query, pin).Scan(
		&rp.ID,
		&rp.UserID,
		&rp.Email,
		&rp.Pin,
		&rp.ExpiresAt,
		&rp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find reset pin", zap.Error(err))
		return nil, fmt.Errorf("find reset pin: %w", err)
	}

	return &rp, nil
}

func (rr *resetPinRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reset_pins WHERE id = $1`

	result, err := rr.db.Exec(ctx, query, id)
	if err != nil {
		rr.log.Error("Failed to delete reset pin",
			zap.Error(err),
			zap.String("pin_id", id.String()),
		)
		return fmt.Errorf("delete reset pin %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reset pin %s not found", id.String())
	}

	return nil
}
