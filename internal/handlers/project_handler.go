package handlers

import (
	"net/http"

	"rabt_backend/internal/middleware"
	"rabt_backend/internal/models"
	"rabt_backend/internal/repositories"
	"rabt_backend/internal/services"
	"rabt_backend/internal/services/dto"
	"rabt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService  services.ProjectService
	interestService services.InterestService
}

func NewProjectHandler(
	base *BaseHandler,
	projectService services.ProjectService,
	interestService services.InterestService,
) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:     base,
		projectService:  projectService,
		interestService: interestService,
	}
}

func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	{
		projects.GET("", h.ListOpenProjects)
		projects.GET("/mine", h.ListOwnProjects)
		projects.GET("/:projectId", h.GetProject)
		projects.PUT("/:projectId/status", h.UpdateProjectStatus)

		projects.POST("/:projectId/interest", h.ExpressInterest)
		projects.GET("/:projectId/interest", h.HasInterest)
		projects.GET("/:projectId/interests", h.ListPendingInterests)
	}

	owners := rg.Group("/projects")
	owners.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleBusinessOwner))
	{
		owners.POST("", h.CreateProject)
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) ListOpenProjects(c *gin.Context) {
	var criteria repositories.ProjectCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	response, err := h.projectService.ListOpenProjects(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) ListOwnProjects(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListOwnProjects(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.projectService.GetProject(c.Param("projectId"), userID, models.UserRole(h.GetUserRole(c)))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.projectService.UpdateProjectStatus(c.Param("projectId"), userID, req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project status updated"})
}

// ExpressInterest is engineer-only; the interest always belongs to the
// caller, never to an engineer named in the payload.
func (h *ProjectHandler) ExpressInterest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if h.GetUserRole(c) != string(models.UserRoleEngineer) {
		h.HandleServiceError(c, apperrors.ErrEngineerOnly)
		return
	}

	interest, err := h.interestService.ExpressInterest(c.Param("projectId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, interest)
}

func (h *ProjectHandler) HasInterest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	hasInterest, err := h.interestService.HasInterest(c.Param("projectId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"has_interest": hasInterest})
}

func (h *ProjectHandler) ListPendingInterests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interests, err := h.interestService.ListPendingInterests(c.Param("projectId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"interests": interests})
}
