package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"realtime-chat-backend/handler"
	"realtime-chat-backend/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.ChatHandler
	*handler.GroupHandler
	*handler.MessageHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected)
	app.Use(rc.Middleware.ExtractUserEmail)

	app.Get("/auth/me", rc.UserHandler.GetMe)
	app.Get("/users", rc.UserHandler.GetAllUsers)

	app.Get("/invites", rc.ChatHandler.GetInvites)
	app.Post("/invites", rc.ChatHandler.CreateInvite)
	app.Post("/invites/accept", rc.ChatHandler.AcceptInvite)
	app.Post("/invites/reject", rc.ChatHandler.RejectInvite)

	app.Get("/chats", rc.ChatHandler.GetAllChats)
	app.Delete("/chats/:chatId", rc.ChatHandler.DeleteChat)

	app.Get("/groups", rc.GroupHandler.GetAllGroups)
	app.Post("/groups", rc.GroupHandler.CreateGroup)

	app.Get("/containers/:containerId/messages", rc.MessageHandler.GetMessages)
	app.Post("/containers/:containerId/messages", rc.MessageHandler.SendMessage)
	app.Put("/messages/:messageId", rc.MessageHandler.EditMessage)
	app.Delete("/messages/:messageId", rc.MessageHandler.DeleteMessage)
	app.Post("/messages/:messageId/like", rc.MessageHandler.LikeMessage)
}

func (rc *ConfigRoute) GetWebSocketRoute(wsHandler *handler.WebSocketHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
