package dto

import "rabt_backend/internal/models"

type PendingEngineersResponse struct {
	Engineers []models.Profile `json:"engineers"`
	Total     int64            `json:"total"`
	Page      int              `json:"page"`
	PageSize  int              `json:"page_size"`
}

type EngineerListResponse struct {
	Engineers  []models.Profile `json:"engineers"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// DashboardStats backs the admin dashboard counters.
type DashboardStats struct {
	TotalProjects       int64 `json:"total_projects"`
	TotalEngineers      int64 `json:"total_engineers"`
	TotalBusinessOwners int64 `json:"total_business_owners"`
	PendingApprovals    int64 `json:"pending_approvals"`
	ActiveInterviews    int64 `json:"active_interviews"`
}
