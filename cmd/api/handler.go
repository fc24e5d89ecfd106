package api

import (
	authdelivery "taskmanager-backend/internal/auth/delivery"
	authusecase "taskmanager-backend/internal/auth/usecase"
	taskdelivery "taskmanager-backend/internal/task/delivery"
	taskusecase "taskmanager-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	engine *gin.Engine
}

// NewHandler builds the Gin engine and registers the full route table.
func NewHandler(authUc authusecase.AuthUsecase, taskUc taskusecase.TaskUsecase, logger *zap.Logger) *Handler {
	authHandler := authdelivery.NewAuthHandler(authUc, logger)
	taskHandler := taskdelivery.NewTaskHandler(taskUc, logger)

	engine := gin.Default()
	SetupRoutes(engine, authUc, authHandler, taskHandler)

	return &Handler{engine: engine}
}

// Engine exposes the router, mainly for tests.
func (h *Handler) Engine() *gin.Engine {
	return h.engine
}

func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
