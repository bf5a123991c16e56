package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationToken proves email ownership for a pending registration.
// It is deleted on successful verification, so a token past expires_at
// is only ever garbage, never a way to enable the account.
type VerificationToken struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}
