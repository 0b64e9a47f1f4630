package models

import "github.com/lib/pq"

type Project struct {
	BaseModel
	OwnerID        string         `gorm:"not null;index" json:"owner_id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"not null" json:"description"`
	RequiredSkills pq.StringArray `gorm:"type:text[]" json:"required_skills"`
	Status         ProjectStatus  `gorm:"type:varchar(20);default:'open'" json:"status"`

	Owner *Profile `gorm:"foreignKey:OwnerID;references:UserID" json:"owner,omitempty"`
}
