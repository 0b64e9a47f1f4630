package dto

import (
	"time"

	"rabt_backend/internal/models"
)

type ScheduleInterviewRequest struct {
	ProjectID     string    `json:"project_id" binding:"required" validate:"required,uuid"`
	EngineerID    string    `json:"engineer_id" binding:"required" validate:"required,uuid"`
	MeetingLink   string    `json:"meeting_link" binding:"required" validate:"required,url"`
	ScheduledTime time.Time `json:"scheduled_time" binding:"required" validate:"required"`
}

type ScheduleVettingInterviewRequest struct {
	EngineerID string `json:"engineer_id" binding:"required" validate:"required,uuid"`
}

type UpdateInterviewStatusRequest struct {
	Status models.InterviewStatus `json:"status" binding:"required" validate:"required,is-interview-status"`
}

type InterviewListResponse struct {
	Interviews []models.Interview `json:"interviews"`
	Total      int                `json:"total"`
}
