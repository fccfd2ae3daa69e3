package services

import (
	"hirenexus_backend/internal/cache"
	"hirenexus_backend/internal/email"
	"hirenexus_backend/internal/notify"
	"hirenexus_backend/internal/store"
	"hirenexus_backend/internal/validator"
)

// ServiceContainer wires all services over one store, cache, event bus,
// and mail provider.
type ServiceContainer struct {
	Auth        *AuthService
	Profile     *ProfileService
	Work        *WorkService
	Application *ApplicationService
	Hiring      *HiringService
	Chat        *ChatService
	Unread      *UnreadService
	Query       *QueryService
}

func NewServiceContainer(s store.Store, c cache.UnreadCache, bus *notify.Bus, mailer email.Provider) *ServiceContainer {
	v := validator.New()

	return &ServiceContainer{
		Auth:        NewAuthService(s, v),
		Profile:     NewProfileService(s, v),
		Work:        NewWorkService(s, v),
		Application: NewApplicationService(s, c, bus, v),
		Hiring:      NewHiringService(s, c, bus, v),
		Chat:        NewChatService(s, c, bus, v),
		Unread:      NewUnreadService(s, c),
		Query:       NewQueryService(s, mailer, v),
	}
}
