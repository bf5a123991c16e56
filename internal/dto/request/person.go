package request

// Birthday travels as "2006-01-02"; parsing happens in the service so a
// malformed date maps onto the same error contract as a range violation.
type InsertDetailsRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Gender    string  `json:"gender" validate:"required,oneof=m f"`
	Birthday  string  `json:"birthday" validate:"required"`
	Height    float64 `json:"height" validate:"required,gte=150,lte=230"`
	Weight    float64 `json:"weight" validate:"required,gte=30,lte=200"`
}

// UpdateDetailsRequest uses pointers for every field: nil means "leave
// unchanged", so 0 is a real (invalid) value instead of a sentinel.
type UpdateDetailsRequest struct {
	Password  *string  `json:"password,omitempty" validate:"omitempty,min=6"`
	FirstName *string  `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string  `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Gender    *string  `json:"gender,omitempty" validate:"omitempty,oneof=m f"`
	Birthday  *string  `json:"birthday,omitempty"`
	Height    *float64 `json:"height,omitempty" validate:"omitempty,gte=150,lte=230"`
	Weight    *float64 `json:"weight,omitempty" validate:"omitempty,gte=30,lte=200"`
}
