package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"realtime-chat-backend/dto/req"
	"realtime-chat-backend/dto/res"
	"realtime-chat-backend/entity"
	"realtime-chat-backend/usecase"
)

type ChatHandler struct {
	usecase.RelationshipUsecase
	*logrus.Logger
}

func NewChatHandler(relationshipUsecase usecase.RelationshipUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{RelationshipUsecase: relationshipUsecase, Logger: logger}
}

func (handler *ChatHandler) GetInvites(ctx *fiber.Ctx) error {
	invites, err := handler.RelationshipUsecase.GetInvites(ctx.Context(), callerEmail(ctx))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get invite list")
		return respondError(ctx, err)
	}

	response := res.Success(fiber.StatusOK, "All invitelist fetched", invites)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) CreateInvite(ctx *fiber.Ctx) error {
	payload := new(req.InviteRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	if err := handler.RelationshipUsecase.CreateInvite(ctx.Context(), callerEmail(ctx), payload.RecipientEmail); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to create invite: %v", err)
		return respondError(ctx, err)
	}

	response := res.Success[any](fiber.StatusAccepted, "Invite sent", nil)
	return ctx.Status(fiber.StatusAccepted).JSON(response)
}

func (handler *ChatHandler) AcceptInvite(ctx *fiber.Ctx) error {
	payload := new(req.InviteDecisionRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	newChat, err := handler.RelationshipUsecase.AcceptInvite(ctx.Context(), callerEmail(ctx), payload.SenderEmail)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to accept invite: %v", err)
		return respondError(ctx, err)
	}

	response := res.Success(fiber.StatusCreated, "Successfully Created", newChat)
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *ChatHandler) RejectInvite(ctx *fiber.Ctx) error {
	payload := new(req.InviteDecisionRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	if err := handler.RelationshipUsecase.RejectInvite(ctx.Context(), callerEmail(ctx), payload.SenderEmail); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to reject invite: %v", err)
		return respondError(ctx, err)
	}

	response := res.Success[any](fiber.StatusOK, "Invite removed successfully", nil)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) GetAllChats(ctx *fiber.Ctx) error {
	chats, err := handler.RelationshipUsecase.GetChats(ctx.Context(), callerEmail(ctx))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get chat list")
		return respondError(ctx, err)
	}

	if chats == nil {
		chats = []entity.Chat{}
	}
	response := res.Success(fiber.StatusOK, "All chatList fetched", chats)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) DeleteChat(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chatId")

	if err := handler.RelationshipUsecase.DeleteChat(ctx.Context(), chatID, callerEmail(ctx)); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to delete chat %s: %v", chatID, err)
		return respondError(ctx, err)
	}

	response := res.Success[any](fiber.StatusOK, "Chat and associated messages deleted successfully", nil)
	return ctx.Status(fiber.StatusOK).JSON(response)
}
