package services

import (
	"encoding/json"
	"fmt"

	"rabt_backend/internal/logger"
	"rabt_backend/internal/models"
	"rabt_backend/internal/repositories"
	"rabt_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type NotificationService interface {
	GetUserNotifications(userID string) ([]models.Notification, error)
	MarkAsRead(notificationID, userID string) error
	MarkAllAsRead(userID string) error
	GetUnreadCount(userID string) (int64, error)

	NotifyNewInterest(ownerID, engineerName, projectTitle, projectID string) error
	NotifyInterviewScheduled(engineerID, interviewID string) error
	NotifyVettingScheduled(engineerID, interviewID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) GetUserNotifications(userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

// MarkAsRead is idempotent and scoped to the owner: marking someone
// else's notification, or one already read, is a no-op.
func (s *notificationService) MarkAsRead(notificationID, userID string) error {
	if err := s.notificationRepo.MarkAsRead(notificationID, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) GetUnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) NotifyNewInterest(ownerID, engineerName, projectTitle, projectID string) error {
	notification := &models.Notification{
		UserID:  ownerID,
		Type:    repositories.NotificationTypeNewInterest,
		Message: fmt.Sprintf("%s has expressed interest in your project \"%s\"", engineerName, projectTitle),
		Link:    "/projects/" + projectID,
		Data:    notificationData(map[string]string{"project_id": projectID}),
	}
	return s.create(notification)
}

func (s *notificationService) NotifyInterviewScheduled(engineerID, interviewID string) error {
	notification := &models.Notification{
		UserID:  engineerID,
		Type:    repositories.NotificationTypeInterviewScheduled,
		Message: "You have been invited to an interview! Check your interviews page for details.",
		Link:    "/interviews",
		Data:    notificationData(map[string]string{"interview_id": interviewID}),
	}
	return s.create(notification)
}

func (s *notificationService) NotifyVettingScheduled(engineerID, interviewID string) error {
	notification := &models.Notification{
		UserID:  engineerID,
		Type:    repositories.NotificationTypeVettingScheduled,
		Message: "An admin scheduled a vetting interview for your profile. Check your interviews page.",
		Link:    "/interviews",
		Data:    notificationData(map[string]string{"interview_id": interviewID}),
	}
	return s.create(notification)
}

// notificationData marshals the structured payload clients use for
// in-app navigation. Marshalling a string map cannot fail.
func notificationData(fields map[string]string) datatypes.JSON {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func (s *notificationService) create(notification *models.Notification) error {
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.Error("failed to create notification",
			"error", err,
			"user_id", notification.UserID,
			"type", notification.Type,
		)
		return apperrors.InternalError(err)
	}
	return nil
}
