package dto

// QueryRequest is the public contact form payload.
type QueryRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Query string `json:"query" validate:"required,min=10,max=5000"`
}
