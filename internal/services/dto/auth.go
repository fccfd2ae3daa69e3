package dto

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	FullName         string   `json:"fullName" validate:"required,min=2,max=100"`
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=8"`
	ConfirmPassword  string   `json:"confirmPassword" validate:"required,eqfield=Password"`
	UserType         string   `json:"userType" validate:"required,is-user-role"`
	SelectedServices []string `json:"selectedServices" validate:"required,min=1,dive,min=2,max=50"`
	Description      string   `json:"description" validate:"omitempty,max=2000"`
	Experience       string   `json:"experience" validate:"omitempty,max=100"`
	PreviousProjects string   `json:"previousProjects" validate:"omitempty,max=2000"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}
