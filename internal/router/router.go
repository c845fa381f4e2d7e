package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"readingtimer/internal/handler"
	"readingtimer/internal/middleware"
	"readingtimer/internal/service"
)

func New(
	adminService *service.AdminService,
	stepHandler *handler.StepHandler,
	statsHandler *handler.StatsHandler,
	adminHandler *handler.AdminHandler,
	corsOrigins []string,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.POST("/steps", stepHandler.Create)

	admin := api.Group("/admin")
	admin.POST("/login", adminHandler.Login)
	admin.POST("/logout", adminHandler.Logout)
	admin.GET("/me", adminHandler.Me)

	stats := api.Group("/stats")
	stats.Use(middleware.Admin(adminService))
	stats.GET("/users", statsHandler.Users)
	stats.GET("/dates", statsHandler.Dates)
	stats.GET("/books", statsHandler.Books)
	stats.GET("/steps", statsHandler.Steps)
	stats.GET("/summary", statsHandler.Summary)

	return engine
}
