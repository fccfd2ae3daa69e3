package dto

// PostWorkRequest is the job-posting wizard payload.
type PostWorkRequest struct {
	Title               string   `json:"title" validate:"required,min=3,max=150"`
	Description         string   `json:"description" validate:"required,min=10,max=5000"`
	Category            string   `json:"category" validate:"required"`
	RequiredSkills      []string `json:"requiredSkills" validate:"omitempty,dive,required"`
	Budget              string   `json:"budget" validate:"required"`
	Duration            string   `json:"duration" validate:"omitempty,max=100"`
	Location            string   `json:"location" validate:"omitempty,max=150"`
	ExperienceLevel     string   `json:"experienceLevel" validate:"omitempty,max=50"`
	Urgency             string   `json:"urgency" validate:"omitempty,max=50"`
	StartDate           string   `json:"startDate" validate:"omitempty,max=50"`
	Deadline            string   `json:"deadline" validate:"omitempty,max=50"`
	SpecialRequirements string   `json:"specialRequirements" validate:"omitempty,max=2000"`
	ContactPreference   string   `json:"contactPreference" validate:"omitempty,max=50"`
	Urgent              bool     `json:"urgent"`
}
