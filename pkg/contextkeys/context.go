package contextkeys

// ContextKey is the typed key used for values stored in gin/request contexts.
type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RoleKey   ContextKey = "role"
)
