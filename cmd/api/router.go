package main

import (
	"net/http"

	"creator-portal-backend/internal/shared/middleware"
	"creator-portal-backend/internal/shared/response"
	"creator-portal-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

// SetupRouter đăng ký toàn bộ routes
//
// Public:  browse directory, location lists, login, health
// Admin:   mọi write operation + import/export + stats (JWT + role check)
func SetupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	// Health check cho load balancer / k8s probes
	healthCheck := func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "DB_UNAVAILABLE", err.Error())
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	}
	router.GET("/health", healthCheck)

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthCheck)

	// ========================================
	// PUBLIC ROUTES
	// ========================================
	{
		v1.POST("/auth/login", c.AuthHandler.Login)

		v1.GET("/creators", c.CreatorHandler.List)
		v1.GET("/creators/:id", c.CreatorHandler.GetByID)

		v1.GET("/locations", c.LocationHandler.List)
		v1.GET("/locations/predefined", c.LocationHandler.ListPredefined)
		v1.GET("/locations/distinct", c.LocationHandler.ListDistinct)
	}

	// ========================================
	// ADMIN ROUTES
	// ========================================
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/stats", c.CreatorHandler.Stats)

		creators := admin.Group("/creators")
		{
			// Static segments trước wildcard routes
			creators.GET("/export", c.CreatorHandler.Export)
			creators.POST("/import", c.CreatorHandler.Import)
			creators.GET("/import/template", c.CreatorHandler.Template)

			creators.POST("", c.CreatorHandler.Create)
			creators.PUT("/:id", c.CreatorHandler.Update)
			creators.DELETE("/:id", c.CreatorHandler.Delete)

			creators.POST("/:id/avatar", c.CreatorHandler.UploadAvatar)
			creators.POST("/:id/media", c.CreatorHandler.AddMedia)
			// Media ID là object key có slashes -> wildcard
			creators.DELETE("/:id/media/*mediaId", c.CreatorHandler.RemoveMedia)
		}

		locations := admin.Group("/locations")
		{
			locations.POST("", c.LocationHandler.Create)
			// Idempotent find-or-create cho custom locations
			locations.POST("/custom", c.LocationHandler.EnsureCustom)
			locations.PUT("/:id", c.LocationHandler.Update)
			locations.DELETE("/:id", c.LocationHandler.Delete)
		}
	}

	return router
}
