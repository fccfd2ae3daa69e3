package models

import "time"

// User is an account record in the "users" collection. Accounts are never
// deleted; profile edits mutate the record in place.
type User struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"passwordHash"`
	Role             UserRole  `json:"userType"`
	SelectedServices []string  `json:"selectedServices"`
	Description      string    `json:"description,omitempty"`
	Experience       string    `json:"experience,omitempty"`
	PreviousProjects string    `json:"previousProjects,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PublicUser is the wire shape of a user; the password hash never leaves
// the service.
type PublicUser struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Role             UserRole  `json:"userType"`
	SelectedServices []string  `json:"selectedServices"`
	Description      string    `json:"description,omitempty"`
	Experience       string    `json:"experience,omitempty"`
	PreviousProjects string    `json:"previousProjects,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		FullName:         u.FullName,
		Email:            u.Email,
		Role:             u.Role,
		SelectedServices: u.SelectedServices,
		Description:      u.Description,
		Experience:       u.Experience,
		PreviousProjects: u.PreviousProjects,
		CreatedAt:        u.CreatedAt,
	}
}
