package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"kunstkamera-backend/internal/domains/artifact"
	"kunstkamera-backend/internal/shared/middleware"
	"kunstkamera-backend/internal/shared/response"
)

type ArtifactHandler struct {
	service artifact.Service
}

func NewArtifactHandler(svc artifact.Service) *ArtifactHandler {
	return &ArtifactHandler{
		service: svc,
	}
}

// Create - POST /api/v1/artifacts
func (h *ArtifactHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req artifact.CreateArtifactRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	art, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, art)
}

// Get - GET /api/v1/artifacts/:id
func (h *ArtifactHandler) Get(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid artifact id")
		return
	}

	art, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, art)
}

// Update - PATCH /api/v1/artifacts/:id
func (h *ArtifactHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid artifact id")
		return
	}

	var req artifact.UpdateArtifactRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	art, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, art)
}

// Delete - DELETE /api/v1/artifacts/:id
func (h *ArtifactHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid artifact id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func writeError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid artifact payload", verrs)
		return
	}

	status := artifact.GetHTTPStatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	response.ErrorResponse(c, status, "ARTIFACT_ERROR", msg)
}
