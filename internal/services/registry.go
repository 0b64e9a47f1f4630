package services

import (
	"rabt_backend/internal/pkg/email"
	"rabt_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires repositories into the service layer. Handlers
// depend on this, never on repositories directly.
type ServiceContainer struct {
	Auth         AuthService
	Profile      ProfileService
	Project      ProjectService
	Interest     InterestService
	Interview    InterviewService
	Notification NotificationService
	Admin        AdminService
}

func NewServiceContainer(db *gorm.DB, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	interestRepo := repositories.NewInterestRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	notificationService := NewNotificationService(notificationRepo)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, profileRepo, refreshTokenRepo, emailProvider),
		Profile:      NewProfileService(profileRepo, userRepo),
		Project:      NewProjectService(projectRepo, profileRepo),
		Interest:     NewInterestService(interestRepo, projectRepo, profileRepo, notificationService),
		Interview:    NewInterviewService(interviewRepo, projectRepo, interestRepo, profileRepo, userRepo, notificationService),
		Notification: notificationService,
		Admin:        NewAdminService(profileRepo, projectRepo, interviewRepo, userRepo),
	}
}
