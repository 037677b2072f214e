package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah149081/career-connect-backend/internal/middleware"
	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/services"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("", middleware.RoleMiddleware(models.UserRoleJobSeeker), h.Apply)
		applications.GET("/mine", middleware.RequireRoles(models.UserRoleJobSeeker, models.UserRoleEmployer), h.GetMyApplications)
		applications.GET("/:applicationId", h.GetApplication)
		applications.PATCH("/:applicationId/status", middleware.RoleMiddleware(models.UserRoleEmployer), h.UpdateStatus)
	}

	employer := r.Group("/employer/applications")
	employer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.GET("", h.GetEmployerApplications)
	}

	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		jobs.GET("/:jobId/applications", h.GetJobApplications)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	application, err := h.applicationService.GetApplication(c.Request.Context(), h.GetDB(c), userID, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := h.ParsePagination(c)
	status := models.ApplicationStatus(c.Query("status"))

	// Applicants see applications they submitted, employers the ones
	// their listings received.
	role, _ := middleware.GetUserRole(c)
	var applications *dto.ApplicationListResponse
	var err error
	if role == models.UserRoleEmployer {
		applications, err = h.applicationService.GetEmployerApplications(c.Request.Context(), h.GetDB(c), userID, status, page, pageSize)
	} else {
		applications, err = h.applicationService.GetMyApplications(c.Request.Context(), h.GetDB(c), userID, status, page, pageSize)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) GetJobApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := h.ParsePagination(c)
	applications, err := h.applicationService.GetJobApplications(c.Request.Context(), h.GetDB(c), userID, c.Param("jobId"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) GetEmployerApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := h.ParsePagination(c)
	status := models.ApplicationStatus(c.Query("status"))
	applications, err := h.applicationService.GetEmployerApplications(c.Request.Context(), h.GetDB(c), userID, status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Request.Context(), h.GetDB(c), userID, c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
