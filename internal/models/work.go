package models

import "time"

// WorkPosting is a project posted by a seeker. New postings are prepended
// to the owner's collection and to the global feed.
type WorkPosting struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Category             string     `json:"category"`
	RequiredSkills       []string   `json:"requiredSkills"`
	Budget               string     `json:"budget"`
	Duration             string     `json:"duration"`
	Location             string     `json:"location"`
	ExperienceLevel      string     `json:"experienceLevel"`
	Urgency              string     `json:"urgency"`
	StartDate            string     `json:"startDate,omitempty"`
	Deadline             string     `json:"deadline,omitempty"`
	SpecialRequirements  string     `json:"specialRequirements,omitempty"`
	ContactPreference    string     `json:"contactPreference,omitempty"`
	PostedByID           string     `json:"postedById"`
	PostedBy             string     `json:"postedBy"`
	PostedByEmail        string     `json:"postedByEmail"`
	PostedOn             time.Time  `json:"postedOn"`
	ApplicationsReceived int        `json:"applicationsReceived"`
	Status               WorkStatus `json:"status"`
	Urgent               bool       `json:"urgent"`
}
