package entity

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "m"
	GenderFemale Gender = "f"
)

// Person is the profile record linked 1:1 to a User. A person row cannot
// exist without its owning user (FK + unique constraint on user_id).
type Person struct {
	BaseNoDelete
	UserID    uuid.UUID `db:"user_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Gender    Gender    `db:"gender"`
	Birthday  time.Time `db:"birthday"`
	Height    float64   `db:"height"`
	Weight    float64   `db:"weight"`
}
