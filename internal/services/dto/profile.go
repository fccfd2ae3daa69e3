package dto

// UpdateProfileRequest carries the editable profile fields. Pointers
// distinguish "leave unchanged" from "set empty".
type UpdateProfileRequest struct {
	FullName         *string   `json:"fullName" validate:"omitempty,min=2,max=100"`
	SelectedServices *[]string `json:"selectedServices" validate:"omitempty,min=1,dive,min=2,max=50"`
	Description      *string   `json:"description" validate:"omitempty,max=2000"`
	Experience       *string   `json:"experience" validate:"omitempty,max=100"`
	PreviousProjects *string   `json:"previousProjects" validate:"omitempty,max=2000"`
}
