package store

// Collection keys. The layout mirrors the original client-side store: one
// JSON array per key, with per-conversation and per-user keys fanned out
// by suffix.
const (
	KeyUsers          = "users"
	KeyConversations  = "conversations"
	KeyApplications   = "applications"
	KeyHiringRequests = "hiring-requests"
	KeyAllProjects    = "all-projects"
	KeyQueries        = "queries"

	messagesPrefix    = "messages-"
	postedWorksPrefix = "posted-works-"
)

// MessagesKey returns the key of a conversation's message thread.
func MessagesKey(conversationID string) string {
	return messagesPrefix + conversationID
}

// PostedWorksKey returns the key of a user's own postings.
func PostedWorksKey(userID string) string {
	return postedWorksPrefix + userID
}
