package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"realtime-chat-backend/dto/res"
	"realtime-chat-backend/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) GetMe(ctx *fiber.Ctx) error {
	userResponse, err := handler.UserUsecase.GetUserByEmail(ctx.Context(), callerEmail(ctx))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get user by token")
		return respondError(ctx, err)
	}

	response := res.Success(fiber.StatusOK, "Successfully To Get User", userResponse)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) GetAllUsers(ctx *fiber.Ctx) error {
	userResponses, err := handler.UserUsecase.GetAllUsers(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get all users")
		return respondError(ctx, err)
	}

	responses := res.Success(fiber.StatusOK, "Successfully To Get All User", userResponses)
	return ctx.Status(fiber.StatusOK).JSON(responses)
}
