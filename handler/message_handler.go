package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"realtime-chat-backend/apperr"
	"realtime-chat-backend/dto/req"
	"realtime-chat-backend/dto/res"
	"realtime-chat-backend/entity"
	"realtime-chat-backend/enum"
	"realtime-chat-backend/storage"
	"realtime-chat-backend/usecase"
)

type MessageHandler struct {
	usecase.MessageUsecase
	Uploader storage.Uploader
	*logrus.Logger
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, uploader storage.Uploader, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{MessageUsecase: messageUsecase, Uploader: uploader, Logger: logger}
}

func (handler *MessageHandler) GetMessages(ctx *fiber.Ctx) error {
	containerID := ctx.Params("containerId")

	messages, err := handler.MessageUsecase.GetMessages(ctx.Context(), containerID, callerEmail(ctx))
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to get messages for %s: %v", containerID, err)
		return respondError(ctx, err)
	}

	if messages == nil {
		messages = []entity.Messages{}
	}
	response := res.Success(fiber.StatusOK, "All messages fetched", messages)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

// SendMessage sends a text message from a JSON body, or a file message when
// the request carries a multipart "file" part. The file is pushed to blob
// storage first and its public URL becomes the message body.
func (handler *MessageHandler) SendMessage(ctx *fiber.Ctx) error {
	containerID := ctx.Params("containerId")
	sender := callerEmail(ctx)

	if fileHeader, err := ctx.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return respondError(ctx, apperr.UploadFailure(err))
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return respondError(ctx, apperr.UploadFailure(err))
		}

		fileURL, err := handler.Uploader.Upload(ctx.Context(), data, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			handler.Logger.WithError(err).Errorf("Failed to upload file: %v", err)
			return respondError(ctx, apperr.UploadFailure(err))
		}

		message, err := handler.MessageUsecase.Send(ctx.Context(), containerID, sender, fileURL, enum.MessageTypeFile)
		if err != nil {
			return respondError(ctx, err)
		}
		response := res.Success(fiber.StatusOK, "Message Sent", message)
		return ctx.Status(fiber.StatusOK).JSON(response)
	}

	payload := new(req.NewMessageRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	message, err := handler.MessageUsecase.Send(ctx.Context(), containerID, sender, payload.Message, enum.MessageType(payload.MessageType))
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to send message: %v", err)
		return respondError(ctx, err)
	}

	response := res.Success(fiber.StatusOK, "Message Sent", message)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *MessageHandler) EditMessage(ctx *fiber.Ctx) error {
	messageID := ctx.Params("messageId")

	payload := new(req.EditMessageRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	message, err := handler.MessageUsecase.Edit(ctx.Context(), messageID, callerEmail(ctx), payload.NewMessage)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to edit message %s: %v", messageID, err)
		return respondError(ctx, err)
	}

	response := res.Success(fiber.StatusOK, "Message edited successfully", message)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *MessageHandler) DeleteMessage(ctx *fiber.Ctx) error {
	messageID := ctx.Params("messageId")

	if err := handler.MessageUsecase.Delete(ctx.Context(), messageID, callerEmail(ctx)); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to delete message %s: %v", messageID, err)
		return respondError(ctx, err)
	}

	response := res.Success[any](fiber.StatusOK, "Message deleted successfully", nil)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *MessageHandler) LikeMessage(ctx *fiber.Ctx) error {
	messageID := ctx.Params("messageId")

	if err := handler.MessageUsecase.Like(ctx.Context(), messageID, callerEmail(ctx)); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to like message %s: %v", messageID, err)
		return respondError(ctx, err)
	}

	response := res.Success[any](fiber.StatusOK, "Message liked", nil)
	return ctx.Status(fiber.StatusOK).JSON(response)
}
