package handlers

import (
	"net/http"

	"rabt_backend/internal/middleware"
	"rabt_backend/internal/models"
	"rabt_backend/internal/services"
	"rabt_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService     services.AdminService
	interviewService services.InterviewService
}

func NewAdminHandler(
	base *BaseHandler,
	adminService services.AdminService,
	interviewService services.InterviewService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      base,
		adminService:     adminService,
		interviewService: interviewService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/engineers/pending", h.ListPendingEngineers)
		admin.PUT("/engineers/:engineerId/approve", h.ApproveEngineer)
		admin.PUT("/engineers/:engineerId/reject", h.RejectEngineer)
		admin.POST("/vetting-interviews", h.ScheduleVettingInterview)
		admin.GET("/stats", h.GetDashboardStats)
	}
}

func (h *AdminHandler) ListPendingEngineers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	response, err := h.adminService.ListPendingEngineers(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ApproveEngineer responds 200 even when no pending engineer matched;
// the update is filtered rather than checked first.
func (h *AdminHandler) ApproveEngineer(c *gin.Context) {
	if err := h.adminService.ApproveEngineer(c.Param("engineerId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Engineer approved"})
}

func (h *AdminHandler) RejectEngineer(c *gin.Context) {
	if err := h.adminService.RejectEngineer(c.Param("engineerId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Engineer rejected"})
}

func (h *AdminHandler) ScheduleVettingInterview(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleVettingInterviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interview, err := h.interviewService.ScheduleVettingInterview(adminID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, interview)
}

func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
