package models

import "time"

// ContactQuery is a landing-page contact form submission.
type ContactQuery struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Query       string    `json:"query"`
	SubmittedAt time.Time `json:"submittedAt"`
}
