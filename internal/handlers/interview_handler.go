package handlers

import (
	"net/http"

	"rabt_backend/internal/middleware"
	"rabt_backend/internal/models"
	"rabt_backend/internal/services"
	"rabt_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	interviews := rg.Group("/interviews")
	interviews.Use(middleware.AuthMiddleware())
	{
		interviews.GET("", h.ListInterviews)
		interviews.PUT("/:interviewId/status", h.UpdateInterviewStatus)
	}

	owners := rg.Group("/interviews")
	owners.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleBusinessOwner))
	{
		owners.POST("", h.ScheduleInterview)
	}
}

func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleInterviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interview, err := h.interviewService.ScheduleInterview(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, interview)
}

func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interviews, err := h.interviewService.ListInterviews(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InterviewListResponse{
		Interviews: interviews,
		Total:      len(interviews),
	})
}

func (h *InterviewHandler) UpdateInterviewStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interview, err := h.interviewService.UpdateInterviewStatus(c.Param("interviewId"), userID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}
