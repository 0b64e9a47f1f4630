package handlers

import (
	"net/http"

	"rabt_backend/internal/middleware"
	"rabt_backend/internal/repositories"
	"rabt_backend/internal/services"
	"rabt_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("/me", h.GetOwnProfile)
		profiles.PUT("/me", h.UpdateProfile)
		profiles.GET("/:userId", h.GetEngineerProfile)
	}

	engineers := rg.Group("/engineers")
	engineers.Use(middleware.AuthMiddleware())
	{
		engineers.GET("", h.SearchEngineers)
	}
}

func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetOwnProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetEngineerProfile(c *gin.Context) {
	profile, err := h.profileService.GetEngineerProfile(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) SearchEngineers(c *gin.Context) {
	var criteria repositories.EngineerCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	response, err := h.profileService.SearchEngineers(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
