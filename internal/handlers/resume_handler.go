package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah149081/career-connect-backend/internal/middleware"
	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/services"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
	"github.com/Abdullah149081/career-connect-backend/pkg/apperrors"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
	}
}

func (h *ResumeHandler) RegisterRoutes(r *gin.RouterGroup) {
	resumes := r.Group("/resumes")
	resumes.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleJobSeeker))
	{
		resumes.GET("", h.ListResumes)
		resumes.POST("", h.CreateResume)
		resumes.POST("/upload", h.UploadResume)
		resumes.GET("/:resumeId", h.GetResume)
		resumes.PUT("/:resumeId", h.UpdateResume)
		resumes.POST("/:resumeId/set-primary", h.SetPrimary)
		resumes.DELETE("/:resumeId", h.DeleteResume)
	}
}

func (h *ResumeHandler) ListResumes(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resumes, err := h.resumeService.ListResumes(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resumes": resumes})
}

func (h *ResumeHandler) CreateResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resume, err := h.resumeService.CreateResume(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resume)
}

// UploadResume accepts a multipart form with the resume file plus
// optional title and is_primary fields.
func (h *ResumeHandler) UploadResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("A resume file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer file.Close()

	title := c.PostForm("title")
	isPrimary := c.PostForm("is_primary") == "true"
	contentType := fileHeader.Header.Get("Content-Type")

	resume, err := h.resumeService.UploadResume(
		c.Request.Context(), h.GetDB(c),
		userID, fileHeader.Filename, contentType, fileHeader.Size,
		file, title, isPrimary,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resume)
}

func (h *ResumeHandler) GetResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resume, err := h.resumeService.GetResume(c.Request.Context(), h.GetDB(c), userID, c.Param("resumeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resume, err := h.resumeService.UpdateResume(c.Request.Context(), h.GetDB(c), userID, c.Param("resumeId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) SetPrimary(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resume, err := h.resumeService.SetPrimary(c.Request.Context(), h.GetDB(c), userID, c.Param("resumeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.resumeService.DeleteResume(c.Request.Context(), h.GetDB(c), userID, c.Param("resumeId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted"})
}
