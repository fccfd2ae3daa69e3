package models

import "time"

// Conversation is a single thread between exactly two users. At most one
// conversation exists per unordered participant pair; resolution must check
// for an existing match before inserting.
type Conversation struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	LastMessage  *Message  `json:"lastMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasParticipant reports whether the user belongs to the conversation.
func (c Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Matches compares the participant pair as an unordered set.
func (c Conversation) Matches(userA, userB string) bool {
	return c.HasParticipant(userA) && c.HasParticipant(userB)
}

// OtherParticipant returns the counterpart of the given user, or "" if the
// user is not a participant.
func (c Conversation) OtherParticipant(userID string) string {
	if !c.HasParticipant(userID) {
		return ""
	}
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}
