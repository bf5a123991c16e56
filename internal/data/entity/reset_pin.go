package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResetPin is a one-time credential authorizing a password change,
// tied to the email it was requested for. Deleted on use.
type ResetPin struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Email     string    `db:"email"`
	Pin       string    `db:"pin"`
	ExpiresAt time.Time `db:"expires_at"`
}
