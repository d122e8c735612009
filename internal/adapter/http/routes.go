package http

import (
	"golang.org/x/time/rate"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/adapter/http/handlers"
	"tasktrack/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler, dashboardHandler *handlers.DashboardHandler, limit rate.Limit, burst int) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(), middleware.RateLimiter(limit, burst))
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	tasks := api.Group("")
	tasks.Use(middleware.IdentityMiddleware())
	{
		tasks.GET("/dashboard", dashboardHandler.GetDashboard)

		tasks.POST("/tasks", taskHandler.CreateTask)
		tasks.GET("/tasks/:id", taskHandler.GetTask)
		tasks.PATCH("/tasks/:id/title", taskHandler.UpdateTitle)
		tasks.PATCH("/tasks/:id/description", taskHandler.UpdateDescription)
		tasks.PATCH("/tasks/:id/priority", taskHandler.UpdatePriority)
		tasks.PATCH("/tasks/:id/deadline", taskHandler.UpdateDeadline)
		tasks.PATCH("/tasks/:id/status", taskHandler.UpdateStatus)
		tasks.PATCH("/tasks/:id/recurring", taskHandler.UpdateRecurring)
		tasks.POST("/tasks/:id/tags", taskHandler.AddTag)
		tasks.DELETE("/tasks/:id/tags/:tag", taskHandler.RemoveTag)
		tasks.POST("/tasks/:id/assignees", taskHandler.AddAssignee)
		tasks.DELETE("/tasks/:id/assignees/:userId", taskHandler.RemoveAssignee)
		tasks.POST("/tasks/:id/comments", taskHandler.AddComment)
		tasks.PATCH("/tasks/:id/comments/:commentId", taskHandler.UpdateComment)
		tasks.POST("/tasks/:id/files", taskHandler.AddFile)
		tasks.DELETE("/tasks/:id/files/:fileId", taskHandler.RemoveFile)
		tasks.POST("/tasks/:id/archive", taskHandler.Archive)
		tasks.POST("/tasks/:id/unarchive", taskHandler.Unarchive)
		tasks.POST("/tasks/:id/complete", taskHandler.Complete)
	}
}
