package models

import "github.com/lib/pq"

// Profile carries the public identity of a user. Engineer-specific fields
// (headline, bio, skills, portfolio) and owner-specific fields (company name)
// live on the same row; the role on the owning User decides which are shown.
type Profile struct {
	BaseModel
	UserID        string         `gorm:"not null;uniqueIndex" json:"user_id"`
	FullName      string         `gorm:"not null" json:"full_name"`
	Headline      string         `json:"headline"`
	Bio           string         `json:"bio"`
	Skills        pq.StringArray `gorm:"type:text[]" json:"skills"`
	PortfolioURL  string         `json:"portfolio_url"`
	ResumeURL     string         `json:"resume_url"`
	CompanyName   string         `json:"company_name"`
	Status        ProfileStatus  `gorm:"type:varchar(20);default:'pending_approval'" json:"status"`
	VettingStatus VettingStatus  `gorm:"type:varchar(20);default:'none'" json:"vetting_status"`
}
