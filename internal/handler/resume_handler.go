package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staffdesk/internal/service"
)

// ResumeHandler handles candidate resume endpoints.
type ResumeHandler struct {
	resumeService service.ResumeService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Upload handles POST /api/v1/resumes
// @Summary Upload a resume
// @Description Upload a candidate resume (PDF, DOC or DOCX) to object storage
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file"
// @Success 201 {object} Response{data=domain.ResumeMeta} "Resume uploaded"
// @Failure 400 {object} ErrorResponseBody "Unsupported file type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /resumes [post]
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file form field is required")
		return
	}
	defer file.Close()

	meta, err := h.resumeService.Upload(c.Request.Context(), service.ResumeUploadInput{
		UploadedBy: userID,
		File:       file,
		Header:     header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, meta)
}

// List handles GET /api/v1/resumes
// @Summary List resumes
// @Tags resumes
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ResumeMeta,meta=PagMeta} "Resumes"
// @Security BearerAuth
// @Router /resumes [get]
func (h *ResumeHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	resumes, total, err := h.resumeService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, resumes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/resumes/:id
// @Summary Get resume metadata
// @Tags resumes
// @Produce json
// @Param id path string true "Resume ID (UUID)"
// @Success 200 {object} Response{data=domain.ResumeMeta} "Resume metadata"
// @Failure 404 {object} ErrorResponseBody "Resume not found"
// @Security BearerAuth
// @Router /resumes/{id} [get]
func (h *ResumeHandler) GetByID(c *gin.Context) {
	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid resume ID")
		return
	}

	meta, err := h.resumeService.GetByID(c.Request.Context(), resumeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, meta)
}

// URL handles GET /api/v1/resumes/:id/url
// @Summary Resume download URL
// @Description Presigned URL for the stored resume file
// @Tags resumes
// @Produce json
// @Param id path string true "Resume ID (UUID)"
// @Success 200 {object} Response{data=DownloadURLResponse} "Download URL"
// @Failure 404 {object} ErrorResponseBody "Resume not found"
// @Security BearerAuth
// @Router /resumes/{id}/url [get]
func (h *ResumeHandler) URL(c *gin.Context) {
	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid resume ID")
		return
	}

	url, err := h.resumeService.GetDownloadURL(c.Request.Context(), resumeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/resumes/:id
// @Summary Delete a resume
// @Description Remove the stored file and its metadata (admin only)
// @Tags resumes
// @Produce json
// @Param id path string true "Resume ID (UUID)"
// @Success 200 {object} Response "Resume deleted"
// @Failure 404 {object} ErrorResponseBody "Resume not found"
// @Security BearerAuth
// @Router /resumes/{id} [delete]
func (h *ResumeHandler) Delete(c *gin.Context) {
	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid resume ID")
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), resumeID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
