package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"realtime-chat-backend/dto/req"
	"realtime-chat-backend/dto/res"
	"realtime-chat-backend/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

// RegisterUser accepts either a JSON body or a multipart form with an
// optional profilePic file. Without a picture a stock avatar is assigned.
func (handler *AuthHandler) RegisterUser(ctx *fiber.Ctx) error {
	payload := &req.RegisterRequest{
		Email:    ctx.FormValue("email"),
		Username: ctx.FormValue("username"),
		Password: ctx.FormValue("password"),
	}
	if payload.Email == "" {
		if err := ctx.BodyParser(payload); err != nil {
			return err
		}
	}

	var picBytes []byte
	var picContentType string
	if fileHeader, err := ctx.FormFile("profilePic"); err == nil {
		file, err := fileHeader.Open()
		if err == nil {
			picBytes, _ = io.ReadAll(file)
			file.Close()
			picContentType = fileHeader.Header.Get("Content-Type")
		}
	}

	registerResponse, err := handler.AuthUsecase.RegisterUser(ctx.Context(), payload, picBytes, picContentType)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to register new user: %v", err)
		return respondError(ctx, err)
	}

	response := res.Success(fiber.StatusCreated, "User Successfully Registerd!!", registerResponse)
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *AuthHandler) LoginUser(ctx *fiber.Ctx) error {
	payload := new(req.LoginRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	loginResponse, err := handler.AuthUsecase.LoginUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to login: %v", err)
		return respondError(ctx, err)
	}

	response := res.Success(fiber.StatusOK, "Successfully Logged In!!", loginResponse)
	return ctx.Status(fiber.StatusOK).JSON(response)
}
