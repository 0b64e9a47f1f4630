package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string         `gorm:"not null;index" json:"user_id"`
	Type    string         `gorm:"not null" json:"type"` // "new_interest", "interview_scheduled", "vetting_scheduled"
	Message string         `gorm:"not null" json:"message"`
	Link    string         `json:"link"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"project_id": "...", "interview_id": "..."}
	IsRead  bool           `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at"`
}
