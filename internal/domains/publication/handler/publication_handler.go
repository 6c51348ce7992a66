package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kunstkamera-backend/internal/domains/publication"
	"kunstkamera-backend/internal/shared/response"
	"kunstkamera-backend/pkg/logger"
)

type PublicationHandler struct {
	service publication.Service
}

func NewPublicationHandler(svc publication.Service) *PublicationHandler {
	return &PublicationHandler{
		service: svc,
	}
}

// Get - GET /api/v1/public/:username/:slug
// Serves the public snapshot of a museum. Private, foreign and missing
// museums all produce the same 404.
func (h *PublicationHandler) Get(c *gin.Context) {
	username := c.Param("username")
	slug := c.Param("slug")

	snap, err := h.service.GetPublished(c.Request.Context(), username, slug)
	if err != nil {
		logger.Error("resolve publication", err)
		response.InternalServerError(c, "Internal server error")
		return
	}
	if snap == nil {
		response.NotFound(c, "Museum not found")
		return
	}

	response.Success(c, http.StatusOK, snap)
}

// Sitemap - GET /sitemap.xml
func (h *PublicationHandler) Sitemap(c *gin.Context) {
	body, err := h.service.Sitemap(c.Request.Context())
	if err != nil {
		logger.Error("render sitemap", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
