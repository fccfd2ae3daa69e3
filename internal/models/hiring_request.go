package models

import "time"

// HiringRequest records a seeker inviting a provider to a project. Stored in
// its own collection, symmetric with applications.
type HiringRequest struct {
	ID           string            `json:"id"`
	HirerID      string            `json:"hirerId"`
	FreelancerID string            `json:"freelancerId"`
	ProjectTitle string            `json:"projectTitle"`
	Description  string            `json:"description"`
	Budget       string            `json:"budget"`
	Timeline     string            `json:"timeline"`
	Urgency      string            `json:"urgency,omitempty"`
	Requirements string            `json:"requirements,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	Status       ApplicationStatus `json:"status"`
}
