package models

// UserRole distinguishes the two sides of the marketplace.
type UserRole string

const (
	UserRoleSeeker   UserRole = "seeker"
	UserRoleProvider UserRole = "provider"
)

func (r UserRole) Valid() bool {
	return r == UserRoleSeeker || r == UserRoleProvider
}

// MessageType tags how a message was produced and how it renders.
type MessageType string

const (
	MessageTypeText        MessageType = "text"
	MessageTypeFile        MessageType = "file"
	MessageTypeApplication MessageType = "application"
	MessageTypeHiring      MessageType = "hiring"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeFile, MessageTypeApplication, MessageTypeHiring:
		return true
	}
	return false
}

// ApplicationStatus tracks an application through review.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// WorkStatus tracks a posting's lifecycle.
type WorkStatus string

const (
	WorkStatusActive WorkStatus = "Active"
	WorkStatusClosed WorkStatus = "Closed"
)
