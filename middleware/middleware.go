package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"realtime-chat-backend/config/common"
	"realtime-chat-backend/dto/res"
	"realtime-chat-backend/security"
)

type Middleware struct {
	*common.Config
	*security.JWT
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, jwt *security.JWT, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, JWT: jwt, Log: logger}
}

func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	secretKey := middleware.GetJwtConfig()

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: secretKey},
		ContextKey: "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Error("Failed to validate JWT")
			return ctx.Status(fiber.StatusUnauthorized).
				JSON(res.Failed(fiber.StatusUnauthorized, "Token is not valid"))
		},
	})(c)
}

// ExtractUserEmail stores the verified identity in locals so handlers never
// trust a body-supplied email for authorization.
func (middleware *Middleware) ExtractUserEmail(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if len(authHeader) < 8 {
		return c.Status(fiber.StatusUnauthorized).
			JSON(res.Failed(fiber.StatusUnauthorized, "Missing Authorization header"))
	}

	email, err := middleware.JWT.GetEmailFromToken(authHeader[7:])
	if err != nil {
		middleware.Log.WithError(err).Error("Failed to extract user email from token")
		return c.Status(fiber.StatusUnauthorized).
			JSON(res.Failed(fiber.StatusUnauthorized, "Failed to extract user email from token"))
	}

	c.Locals("user_email", email)
	return c.Next()
}
