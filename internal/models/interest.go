package models

// ProjectInterest records an engineer's intent to work on a project.
// The composite unique index makes the insert the single source of truth for
// the at-most-one-per-pair rule; concurrent duplicate submissions lose on the
// conflict instead of slipping past a pre-check.
type ProjectInterest struct {
	BaseModel
	ProjectID  string         `gorm:"not null;uniqueIndex:idx_interest_project_engineer" json:"project_id"`
	EngineerID string         `gorm:"not null;uniqueIndex:idx_interest_project_engineer" json:"engineer_id"`
	Status     InterestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Engineer *Profile `gorm:"foreignKey:EngineerID;references:UserID" json:"engineer,omitempty"`
}
