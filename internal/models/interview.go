package models

import "time"

type Interview struct {
	BaseModel
	ProjectID     *string         `gorm:"index" json:"project_id"` // null for vetting interviews
	EngineerID    string          `gorm:"not null;index" json:"engineer_id"`
	OwnerID       string          `gorm:"not null;index" json:"owner_id"`
	ScheduledTime *time.Time      `json:"scheduled_time"`
	MeetingLink   string          `json:"meeting_link"`
	Status        InterviewStatus `gorm:"type:varchar(20);not null" json:"status"`
	InterviewType InterviewType   `gorm:"type:varchar(30);not null" json:"interview_type"`

	Project  *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Engineer *Profile `gorm:"foreignKey:EngineerID;references:UserID" json:"engineer,omitempty"`
	Owner    *Profile `gorm:"foreignKey:OwnerID;references:UserID" json:"owner,omitempty"`
}

// HasParticipant reports whether userID takes part in the interview.
func (i *Interview) HasParticipant(userID string) bool {
	return userID == i.EngineerID || userID == i.OwnerID
}
