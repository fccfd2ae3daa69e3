package handlers

import "hirenexus_backend/internal/services"

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	User         *UserHandler
	Work         *WorkHandler
	Application  *ApplicationHandler
	Hiring       *HiringHandler
	Chat         *ChatHandler
	Notification *NotificationHandler
	Query        *QueryHandler
}

func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()

	return &AppHandlers{
		Auth:         NewAuthHandler(base, svc.Auth),
		Profile:      NewProfileHandler(base, svc.Profile),
		User:         NewUserHandler(base, svc.Profile),
		Work:         NewWorkHandler(base, svc.Work),
		Application:  NewApplicationHandler(base, svc.Application),
		Hiring:       NewHiringHandler(base, svc.Hiring),
		Chat:         NewChatHandler(base, svc.Chat),
		Notification: NewNotificationHandler(base, svc.Unread),
		Query:        NewQueryHandler(base, svc.Query),
	}
}
