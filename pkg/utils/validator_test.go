package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Email    string  `json:"email" validate:"required,email"`
	Height   float64 `json:"height" validate:"omitempty,gte=150,lte=230"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Username: "alice", Email: "a@x.com"})
	assert.Nil(t, errs)

	errs = ValidateStruct(sampleRequest{Username: "al", Email: "not-an-email", Height: 240})
	assert.Len(t, errs, 3)
	// Field names come from json tags
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "height")
}

func TestFirstInvalidField(t *testing.T) {
	_, invalid := FirstInvalidField(sampleRequest{Username: "alice", Email: "a@x.com"})
	assert.False(t, invalid)

	// Declaration order decides which field is reported first
	field, invalid := FirstInvalidField(sampleRequest{Username: "", Email: "bad"})
	assert.True(t, invalid)
	assert.Equal(t, "username", field)

	field, invalid = FirstInvalidField(sampleRequest{Username: "alice", Email: "a@x.com", Height: 120})
	assert.True(t, invalid)
	assert.Equal(t, "height", field)
}
