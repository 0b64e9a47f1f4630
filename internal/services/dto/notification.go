package dto

import "rabt_backend/internal/models"

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int                   `json:"total"`
}

type UnreadCountResponse struct {
	Count int64 `json:"unread_count"`
}
