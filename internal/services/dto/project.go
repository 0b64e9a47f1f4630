package dto

import "rabt_backend/internal/models"

type CreateProjectRequest struct {
	Title          string   `json:"title" binding:"required" validate:"required,min=5,max=200"`
	Description    string   `json:"description" binding:"required" validate:"required,min=20,max=2000"`
	RequiredSkills []string `json:"required_skills" binding:"required" validate:"required,min=1,max=15,dive,min=1"`
}

type UpdateProjectStatusRequest struct {
	Status models.ProjectStatus `json:"status" binding:"required" validate:"required,is-project-status"`
}

// MatchedEngineer ranks an approved engineer against a project's required
// skills by overlap. Shown only to the project owner.
type MatchedEngineer struct {
	EngineerID string   `json:"engineer_id"`
	FullName   string   `json:"full_name"`
	Headline   string   `json:"headline"`
	Skills     []string `json:"skills"`
	MatchScore float64  `json:"match_score"`
}

type ProjectResponse struct {
	Project          *models.Project   `json:"project"`
	MatchedEngineers []MatchedEngineer `json:"matched_engineers,omitempty"`
}

type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}
