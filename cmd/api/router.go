package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kunstkamera-backend/internal/shared/middleware"
	"kunstkamera-backend/internal/shared/response"
	"kunstkamera-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	r.GET("/sitemap.xml", c.PublicationHandler.Sitemap)

	v1 := r.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "database unreachable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}

	public := v1.Group("/public")
	{
		public.GET("/:username/:slug", c.PublicationHandler.Get)
	}

	// reads resolve the principal when a token is present but never 401
	// up front; listing another user's public museums works anonymously
	optional := v1.Group("")
	optional.Use(middleware.OptionalAuth(c.JWTManager))
	{
		optional.GET("/museums", c.MuseumHandler.List)
		optional.GET("/museums/:id", c.MuseumHandler.Get)
		optional.GET("/artifacts/:id", c.ArtifactHandler.Get)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(c.JWTManager))
	{
		protected.GET("/profile", c.ProfileHandler.Get)
		protected.PATCH("/profile", c.ProfileHandler.Update)

		protected.POST("/museums", c.MuseumHandler.Create)
		protected.PATCH("/museums/:id", c.MuseumHandler.Update)
		protected.DELETE("/museums/:id", c.MuseumHandler.Delete)
		protected.POST("/museums/:id/like", c.MuseumHandler.Like)
		protected.DELETE("/museums/:id/like", c.MuseumHandler.Unlike)

		protected.POST("/artifacts", c.ArtifactHandler.Create)
		protected.PATCH("/artifacts/:id", c.ArtifactHandler.Update)
		protected.DELETE("/artifacts/:id", c.ArtifactHandler.Delete)

		protected.POST("/upload", c.UploadHandler.Upload)
	}

	return r
}
