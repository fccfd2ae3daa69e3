package dto

// Resume uploads keep metadata only; 5 MB cap mirrors the client check.
const MaxResumeSize = 5 * 1024 * 1024

// ApplyRequest submits an application against a listed service.
type ApplyRequest struct {
	ServiceID    string `json:"serviceId" validate:"required"`
	ServiceTitle string `json:"serviceTitle" validate:"required"`
	Description  string `json:"description" validate:"required,min=50,max=500"`
	ResumeName   string `json:"resumeName" validate:"required,resume-ext"`
	ResumeSize   int64  `json:"resumeSize" validate:"required,gt=0"`
}
