package models

import "time"

// Application records a provider applying to a work posting. The synthesized
// conversation message is written in the same transaction (see the
// application service), so the two can not drift apart.
type Application struct {
	ID            string            `json:"id"`
	ServiceID     string            `json:"serviceId"`
	ServiceTitle  string            `json:"serviceTitle"`
	ApplicantID   string            `json:"applicantId"`
	ApplicantName string            `json:"applicantName"`
	Description   string            `json:"description"`
	ResumeName    string            `json:"resumeName"`
	ResumeSize    int64             `json:"resumeSize,omitempty"`
	AppliedAt     time.Time         `json:"appliedAt"`
	Status        ApplicationStatus `json:"status"`
}
