package main

import (
	"log"

	api "taskmanager-backend/cmd/api"
	authdomain "taskmanager-backend/internal/auth/domain"
	authrepo "taskmanager-backend/internal/auth/repository"
	authusecase "taskmanager-backend/internal/auth/usecase"
	"taskmanager-backend/internal/mailer"
	taskdomain "taskmanager-backend/internal/task/domain"
	taskrepo "taskmanager-backend/internal/task/repository"
	taskusecase "taskmanager-backend/internal/task/usecase"
	"taskmanager-backend/pkg/config"
	"taskmanager-backend/pkg/database"
	"taskmanager-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zl.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.AuthToken{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authrepo.NewUserRepository(db)
	taskRepository := taskrepo.NewGormTaskRepository(db)

	// Initialize the notification collaborator; without an API key account
	// emails are simply skipped.
	var sender mailer.Sender
	if cfg.SendGridAPIKey != "" {
		sender = mailer.NewSendGridSender(cfg.SendGridAPIKey, cfg.MailFrom, cfg.MailFromName)
	} else {
		zl.Warn("SENDGRID_API_KEY not configured, account emails disabled")
	}
	notifier := mailer.NewService(sender, zl)

	// Initialize use cases
	authUc := authusecase.NewAuthUsecase(userRepo, notifier, cfg)
	taskUc := taskusecase.NewTaskUsecase(taskRepository)

	// Initialize HTTP handler and start the server
	handler := api.NewHandler(authUc, taskUc, zl)

	zl.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
