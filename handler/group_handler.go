package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"realtime-chat-backend/dto/req"
	"realtime-chat-backend/dto/res"
	"realtime-chat-backend/entity"
	"realtime-chat-backend/usecase"
)

type GroupHandler struct {
	usecase.RelationshipUsecase
	*logrus.Logger
}

func NewGroupHandler(relationshipUsecase usecase.RelationshipUsecase, logger *logrus.Logger) *GroupHandler {
	return &GroupHandler{RelationshipUsecase: relationshipUsecase, Logger: logger}
}

func (handler *GroupHandler) CreateGroup(ctx *fiber.Ctx) error {
	payload := new(req.CreateGroupRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	newGroup, err := handler.RelationshipUsecase.CreateGroup(ctx.Context(), callerEmail(ctx), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to create group: %v", err)
		return respondError(ctx, err)
	}

	response := res.Success(fiber.StatusCreated, "Group created successfully", newGroup)
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *GroupHandler) GetAllGroups(ctx *fiber.Ctx) error {
	groups, err := handler.RelationshipUsecase.GetGroups(ctx.Context(), callerEmail(ctx))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get group list")
		return respondError(ctx, err)
	}

	if groups == nil {
		groups = []entity.Chat{}
	}
	response := res.Success(fiber.StatusOK, "Groups fetched successfully", groups)
	return ctx.Status(fiber.StatusOK).JSON(response)
}
