package response

import (
	"health-tracker/internal/data/entity"
)

type PersonResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Gender    string  `json:"gender"`
	Birthday  string  `json:"birthday"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
}

// PersonEnvelope is the person payload: {"person": {...}} or
// {"person": null} when no details were inserted yet.
type PersonEnvelope struct {
	Person *PersonResponse `json:"person"`
}

func PersonToResponse(person *entity.Person) *PersonResponse {
	return &PersonResponse{
		ID:        person.ID.String(),
		FirstName: person.FirstName,
		LastName:  person.LastName,
		Gender:    string(person.Gender),
		Birthday:  person.Birthday.Format("2006-01-02"),
		Height:    person.Height,
		Weight:    person.Weight,
	}
}
