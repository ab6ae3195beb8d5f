package handler

import (
	"github.com/gofiber/fiber/v2"

	"realtime-chat-backend/apperr"
	"realtime-chat-backend/dto/res"
)

// respondError maps a usecase error onto the structured {status, message}
// body. Internal details never reach the caller.
func respondError(c *fiber.Ctx, err error) error {
	statusCode := apperr.StatusCode(err)
	return c.Status(statusCode).JSON(res.Failed(statusCode, apperr.UserMessage(err)))
}

// callerEmail reads the identity placed in locals by the auth middleware.
func callerEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("user_email").(string)
	return email
}
