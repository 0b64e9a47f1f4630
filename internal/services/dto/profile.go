package dto

// UpdateProfileRequest carries the self-editable profile fields. Role and
// status never come from the client.
type UpdateProfileRequest struct {
	FullName     *string  `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Headline     *string  `json:"headline,omitempty" validate:"omitempty,max=200"`
	Bio          *string  `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Skills       []string `json:"skills,omitempty" validate:"omitempty,max=20,dive,min=1"`
	PortfolioURL *string  `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	ResumeURL    *string  `json:"resume_url,omitempty" validate:"omitempty,url"`
	CompanyName  *string  `json:"company_name,omitempty" validate:"omitempty,max=100"`
}
