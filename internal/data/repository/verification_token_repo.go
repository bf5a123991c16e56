package repository

import (
	"context"
	"fmt"

	"health-tracker/internal/data/entity"
	"health-tracker/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VerificationTokenRepository interface {
	FindByToken(ctx context.Context, token string) (*entity.VerificationToken, error)
	Consume(ctx context.Context, token *entity.VerificationToken) error
}

type verificationTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationTokenRepository(db database.PgxIface, log *zap.Logger) VerificationTokenRepository {
	return &verificationTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification_token")),
	}
}

func (vr *verificationTokenRepository) FindByToken(ctx context.Context, token string) (*entity.VerificationToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, created_at
		FROM verification_tokens
		WHERE token = $1
	`

	var vt entity.VerificationToken
	err := vr.db.QueryRow(ctx, query, token).Scan(
		&vt.ID,
		&vt.UserID,
		&vt.Token,
		&vt.ExpiresAt,
		&vt.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		vr.log.Error("Failed to find verification token", zap.Error(err))
		return nil, fmt.Errorf("find verification token: %w", err)
	}

	return &vt, nil
}

// Consume enables the owning user and deletes the token in one transaction.
// Deleting the row is what makes verification single-use.
func (vr *verificationTokenRepository) Consume(ctx context.Context, token *entity.VerificationToken) error {
	tx, err := vr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin verify tx: %w", err)
	}
	defer tx.Rollback(ctx)

	enableQuery := `UPDATE users SET enabled = TRUE, updated_at = NOW() WHERE id = $1`
	if _, err := tx.Exec(ctx, enableQuery, token.UserID); err != nil {
		vr.log.Error("Failed to enable user",
			zap.Error(err),
			zap.String("user_id", token.UserID.String()),
		)
		return fmt.Errorf("enable user %s: %w", token.UserID.String(), err)
	}

	deleteQuery := `DELETE FROM verification_tokens WHERE id = $1`
	if _, err := tx.Exec(ctx, deleteQuery, token.ID); err != nil {
		vr.log.Error("Failed to delete verification token",
			zap.Error(err),
			zap.String("token_id", token.ID.String()),
		)
		return fmt.Errorf("delete verification token %s: %w", token.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit verify tx: %w", err)
	}

	return nil
}
