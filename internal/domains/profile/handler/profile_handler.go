package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kunstkamera-backend/internal/domains/profile"
	"kunstkamera-backend/internal/domains/user"
	"kunstkamera-backend/internal/shared/middleware"
	"kunstkamera-backend/internal/shared/response"
	"kunstkamera-backend/pkg/logger"
)

type ProfileHandler struct {
	service     profile.Service
	userService user.Service
}

func NewProfileHandler(svc profile.Service, userSvc user.Service) *ProfileHandler {
	return &ProfileHandler{
		service:     svc,
		userService: userSvc,
	}
}

// Get - GET /api/v1/profile
// Creates the profile lazily on the first authenticated fetch.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	account, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("load account for profile", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	prof, err := h.service.GetOrCreate(c.Request.Context(), userID, account.Email, account.DisplayName)
	if err != nil {
		logger.Error("get or create profile", err)
		response.ErrorResponse(c, profile.GetHTTPStatusCode(err), "PROFILE_FETCH_FAILED", publicMessage(err))
		return
	}

	response.Success(c, http.StatusOK, prof)
}

// Update - PATCH /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile payload", err)
		return
	}

	prof, err := h.service.Update(c.Request.Context(), userID, req)
	if err != nil {
		response.ErrorResponse(c, profile.GetHTTPStatusCode(err), "PROFILE_UPDATE_FAILED", publicMessage(err))
		return
	}

	response.Success(c, http.StatusOK, prof)
}

func publicMessage(err error) string {
	if profile.GetHTTPStatusCode(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
