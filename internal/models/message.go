package models

import "time"

// Message is one entry in a conversation thread. Threads are append-only
// and ordered; after creation the read flag is the only mutable field.
// File messages carry name/size metadata only, never content.
type Message struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"senderId"`
	ReceiverID string      `json:"receiverId"`
	Content    string      `json:"content"`
	Timestamp  time.Time   `json:"timestamp"`
	Type       MessageType `json:"type"`
	FileName   string      `json:"fileName,omitempty"`
	FileSize   int64       `json:"fileSize,omitempty"`
	Read       bool        `json:"read"`
}
