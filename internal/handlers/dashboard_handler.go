package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah149081/career-connect-backend/internal/middleware"
	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/services"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/employer", middleware.RoleMiddleware(models.UserRoleEmployer), h.GetEmployerDashboard)
		dashboard.GET("/job-seeker", middleware.RoleMiddleware(models.UserRoleJobSeeker), h.GetJobSeekerDashboard)
	}
}

func (h *DashboardHandler) GetEmployerDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetEmployerDashboard(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) GetJobSeekerDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetJobSeekerDashboard(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
