package repositories

import (
	"time"

	"rabt_backend/internal/models"

	"gorm.io/gorm"
)

// Notification types emitted by the workflow operations.
const (
	NotificationTypeNewInterest        = "new_interest"
	NotificationTypeInterviewScheduled = "interview_scheduled"
	NotificationTypeVettingScheduled   = "vetting_scheduled"
)

// UserNotificationLimit caps the notification feed per user.
const UserNotificationLimit = 20

type NotificationRepository interface {
	Create(notification *models.Notification) error

	// FindByUser returns the user's notifications newest-first, capped at
	// UserNotificationLimit.
	FindByUser(userID string) ([]models.Notification, error)

	// MarkAsRead updates the row only when it belongs to userID. A zero
	// match is not surfaced: the update is a no-op and the call succeeds,
	// which also makes repeated calls idempotent.
	MarkAsRead(notificationID, userID string) error
	MarkAllAsRead(userID string) error
	GetUnreadCount(userID string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(UserNotificationLimit).
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(notificationID, userID string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND is_read = false", notificationID, userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": &now,
		}).Error
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(userID string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": &now,
		}).Error
}

func (r *NotificationRepositoryImpl) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}
