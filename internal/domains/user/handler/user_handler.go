package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kunstkamera-backend/internal/domains/user"
	"kunstkamera-backend/internal/shared/response"
	"kunstkamera-backend/pkg/logger"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{
		service: svc,
	}
}

// Register - POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration payload", err)
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("register failed", err)
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "REGISTER_FAILED", publicMessage(err))
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Login - POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "LOGIN_FAILED", publicMessage(err))
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Refresh - POST /api/v1/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "REFRESH_FAILED", publicMessage(err))
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// publicMessage strips store internals from errors before they reach the
// client; domain errors carry a safe message themselves.
func publicMessage(err error) string {
	if user.GetHTTPStatusCode(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
