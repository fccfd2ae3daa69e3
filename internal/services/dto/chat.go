package dto

import "hirenexus_backend/internal/models"

// File attachments in chat are capped at 10 MB.
const MaxAttachmentSize = 10 * 1024 * 1024

// StartConversationRequest resolves (or creates) the thread between the
// caller and a peer.
type StartConversationRequest struct {
	PeerID string `json:"peerId" validate:"required"`
}

// SendMessageRequest appends a message to a conversation.
type SendMessageRequest struct {
	Content  string `json:"content" validate:"required_without=FileName,max=5000"`
	Type     string `json:"type" validate:"omitempty,is-message-type"`
	FileName string `json:"fileName" validate:"omitempty,max=255"`
	FileSize int64  `json:"fileSize" validate:"omitempty,gte=0"`
}

// ConversationSummary is a conversation decorated for the inbox list.
type ConversationSummary struct {
	ID          string             `json:"id"`
	Peer        *models.PublicUser `json:"peer"`
	LastMessage *models.Message    `json:"lastMessage,omitempty"`
	UnreadCount int                `json:"unreadCount"`
	CreatedAt   string             `json:"createdAt"`
}
