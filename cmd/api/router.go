package api

import (
	"net/http"

	authdelivery "taskmanager-backend/internal/auth/delivery"
	authusecase "taskmanager-backend/internal/auth/usecase"
	taskdelivery "taskmanager-backend/internal/task/delivery"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the route table. Paths match the original service so
// existing clients keep working.
func SetupRoutes(r *gin.Engine, authUsecase authusecase.AuthUsecase, authHandler *authdelivery.AuthHandler, taskHandler *taskdelivery.TaskHandler) {
	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := authdelivery.AuthMiddleware(authUsecase)

	// Public user routes
	r.POST("/users", authHandler.Signup)
	r.POST("/users/login", authHandler.Login)
	r.GET("/users/:id/avatar", authHandler.GetAvatar)

	// Session and profile routes (protected)
	r.POST("/users/logout", auth, authHandler.Logout)
	r.POST("/users/logoutall", auth, authHandler.LogoutAll)
	r.GET("/users/me", auth, authHandler.Me)
	r.PATCH("/users/me", auth, authHandler.UpdateMe)
	r.DELETE("/users/me", auth, authHandler.DeleteMe)
	r.POST("/users/me/avatar", auth, authHandler.UploadAvatar)
	r.DELETE("/users/me/avatar", auth, authHandler.DeleteAvatar)

	// Task routes (protected)
	r.POST("/tasks", auth, taskHandler.CreateTask)
	r.GET("/mytasks", auth, taskHandler.ListTasks)
	r.GET("/tasks/:id", auth, taskHandler.GetTask)
	r.PATCH("/tasks/:id", auth, taskHandler.UpdateTask)
	r.DELETE("/tasks/:id", auth, taskHandler.DeleteTask)
}
