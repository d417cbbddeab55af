package model

// UserPayload is the body of a credential request.
type UserPayload struct {
	Email string `json:"email" validate:"required,email,max=254"`
	Name  string `json:"name,omitempty" validate:"omitempty,max=100"`
}
