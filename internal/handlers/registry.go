package handlers

import (
	"rabt_backend/internal/services"
	"rabt_backend/internal/validator"
)

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Project      *ProjectHandler
	Interview    *InterviewHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.Auth),
		Profile:      NewProfileHandler(base, sc.Profile),
		Project:      NewProjectHandler(base, sc.Project, sc.Interest),
		Interview:    NewInterviewHandler(base, sc.Interview),
		Notification: NewNotificationHandler(base, sc.Notification),
		Admin:        NewAdminHandler(base, sc.Admin, sc.Interview),
	}
}
