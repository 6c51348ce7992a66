package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"kunstkamera-backend/internal/domains/museum"
	"kunstkamera-backend/internal/shared/middleware"
	"kunstkamera-backend/internal/shared/response"
)

type MuseumHandler struct {
	service museum.Service
}

func NewMuseumHandler(svc museum.Service) *MuseumHandler {
	return &MuseumHandler{
		service: svc,
	}
}

// Create - POST /api/v1/museums
func (h *MuseumHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req museum.CreateMuseumRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	mus, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, mus)
}

// List - GET /api/v1/museums?userId=...
// Naming another user restricts the list to their public museums and works
// for anonymous callers. Without userId the requester's own museums come
// back, private ones included, which needs a session.
func (h *MuseumHandler) List(c *gin.Context) {
	userID, authed := middleware.CurrentUser(c)

	var target *uuid.UUID
	if raw := c.Query("userId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid userId")
			return
		}
		target = &parsed
	}

	if target == nil && !authed {
		response.Unauthorized(c, "authentication required")
		return
	}

	museums, err := h.service.List(c.Request.Context(), userID, target)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, museums)
}

// Get - GET /api/v1/museums/:id
func (h *MuseumHandler) Get(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid museum id")
		return
	}

	mus, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mus)
}

// Update - PATCH /api/v1/museums/:id
func (h *MuseumHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid museum id")
		return
	}

	var req museum.UpdateMuseumRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	mus, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mus)
}

// Delete - DELETE /api/v1/museums/:id
func (h *MuseumHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid museum id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Like - POST /api/v1/museums/:id/like
func (h *MuseumHandler) Like(c *gin.Context) {
	h.toggleLike(c, h.service.Like)
}

// Unlike - DELETE /api/v1/museums/:id/like
func (h *MuseumHandler) Unlike(c *gin.Context) {
	h.toggleLike(c, h.service.Unlike)
}

func (h *MuseumHandler) toggleLike(c *gin.Context, op func(ctx context.Context, requesterID, id uuid.UUID) error) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid museum id")
		return
	}

	if err := op(c.Request.Context(), userID, id); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

func writeError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid museum payload", verrs)
		return
	}

	status := museum.GetHTTPStatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	response.ErrorResponse(c, status, "MUSEUM_ERROR", msg)
}
