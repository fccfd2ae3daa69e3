package dto

// HireRequest submits a direct hiring request to a freelancer.
type HireRequest struct {
	FreelancerID string `json:"freelancerId" validate:"required"`
	ProjectTitle string `json:"projectTitle" validate:"required,min=3,max=150"`
	Description  string `json:"description" validate:"required,min=10,max=5000"`
	Budget       string `json:"budget" validate:"required"`
	Timeline     string `json:"timeline" validate:"required"`
	Urgency      string `json:"urgency" validate:"omitempty,max=50"`
	Requirements string `json:"requirements" validate:"omitempty,max=2000"`
}
