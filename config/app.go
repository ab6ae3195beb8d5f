package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"realtime-chat-backend/config/common"
	"realtime-chat-backend/config/logger"
	"realtime-chat-backend/handler"
	"realtime-chat-backend/middleware"
	"realtime-chat-backend/presence"
	"realtime-chat-backend/realtime"
	"realtime-chat-backend/repository"
	"realtime-chat-backend/routes"
	"realtime-chat-backend/security"
	"realtime-chat-backend/storage"
	"realtime-chat-backend/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Hub      *realtime.Hub
	Presence *presence.Registry
	Uploader storage.Uploader
	Config   *common.Config
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := logrus.New()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := validator.New()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)

	redisClient := NewRedisClient(newConfig, appLog)
	presenceStore := presence.NewRedisStore(redisClient)
	registry := presence.NewRegistry(presenceStore, log, newConfig.GetPresenceTTL())

	hub := realtime.NewHub(log)

	uploader, err := storage.NewDiskUploader(newConfig.GetUploadDir())
	if err != nil {
		log.WithError(err).Fatalf("Failed to prepare upload dir: %v", err)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Static("/uploads", newConfig.GetUploadDir())

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Hub:        hub,
		Presence:   registry,
		Uploader:   uploader,
		Config:     newConfig,
	})

	if err := app.Listen(":" + newConfig.GetAppPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newUserRepository := repository.NewUserRepository()
	newInviteRepository := repository.NewInviteRepository()
	newFriendshipRepository := repository.NewFriendshipRepository()
	newChatRepository := repository.NewChatRepository()
	newMessageRepository := repository.NewMessageRepository()

	// The dispatcher is handed to the usecases explicitly; nothing reaches
	// the hub through a package-level singleton.
	dispatcher := realtime.NewDispatcher(aC.Hub)

	newAuthUsecase := usecase.NewAuthUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT, aC.Uploader)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.GetDB(), aC.Logger)
	newRelationshipUsecase := usecase.NewRelationshipUsecase(
		newUserRepository, newInviteRepository, newFriendshipRepository, newChatRepository,
		aC.Validate, aC.GetDB(), aC.Logger, dispatcher,
	)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newChatRepository, aC.GetDB(), aC.Logger, dispatcher)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newChatHandler := handler.NewChatHandler(newRelationshipUsecase, aC.Logger)
	newGroupHandler := handler.NewGroupHandler(newRelationshipUsecase, aC.Logger)
	newMessageHandler := handler.NewMessageHandler(newMessageUsecase, aC.Uploader, aC.Logger)

	wsHandler := handler.NewWebSocketHandler(aC.Logger, aC.Hub, aC.Presence)

	route := routes.ConfigRoute{
		App:            aC.App,
		Middleware:     aC.Middleware,
		AuthHandler:    newAuthHandler,
		UserHandler:    newUserHandler,
		ChatHandler:    newChatHandler,
		GroupHandler:   newGroupHandler,
		MessageHandler: newMessageHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)
}
