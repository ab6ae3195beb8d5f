package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"realtime-chat-backend/apperr"
	"realtime-chat-backend/entity"
	"realtime-chat-backend/enum"
	"realtime-chat-backend/realtime"
	"realtime-chat-backend/repository"
)

type MessageUsecaseImpl struct {
	*repository.MessageRepository
	*repository.ChatRepository
	*gorm.DB
	*logrus.Logger
	Dispatcher *realtime.Dispatcher
}

func NewMessageUsecase(
	messageRepository *repository.MessageRepository,
	chatRepository *repository.ChatRepository,
	DB *gorm.DB,
	logger *logrus.Logger,
	dispatcher *realtime.Dispatcher,
) MessageUsecase {
	return &MessageUsecaseImpl{
		MessageRepository: messageRepository,
		ChatRepository:    chatRepository,
		DB:                DB,
		Logger:            logger,
		Dispatcher:        dispatcher,
	}
}

// Send persists the message and fans newMessage out to every participant of
// the container, the sender included so their other devices stay in sync.
func (uc *MessageUsecaseImpl) Send(ctx context.Context, containerID, senderEmail, content string, messageType enum.MessageType) (*entity.Messages, error) {
	container, err := uc.ChatRepository.FindContainer(ctx, uc.DB, containerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if container == nil {
		return nil, apperr.NotFound("Chat not found")
	}

	audience, ok := audienceOf(container, senderEmail)
	if !ok {
		return nil, apperr.Forbidden("Not a participant of this chat")
	}

	if messageType == "" {
		messageType = enum.MessageTypeText
	}
	message := &entity.Messages{
		Content:     content,
		ChatId:      container.ID,
		SenderEmail: senderEmail,
		MessageType: messageType,
	}
	if err := uc.MessageRepository.Save(ctx, uc.DB, message); err != nil {
		uc.Logger.WithError(err).Errorf("Failed to save message: %v", err)
		return nil, apperr.Internal(err)
	}

	uc.Dispatcher.NewMessage(audience, message, container.ID)
	return message, nil
}

// Edit mutates the body in place and marks the message edited. The audience
// is re-derived from the container so group chats with more than two members
// are notified correctly.
func (uc *MessageUsecaseImpl) Edit(ctx context.Context, messageID, byEmail, newMessage string) (*entity.Messages, error) {
	message, audience, err := uc.loadMessageWithAudience(ctx, messageID, byEmail)
	if err != nil {
		return nil, err
	}
	if message.SenderEmail != byEmail {
		return nil, apperr.Forbidden("Only the sender can edit a message")
	}
	if message.IsDeleted {
		return nil, apperr.NotFound("Message not Found")
	}

	message.Content = newMessage
	message.IsEdited = true
	if err := uc.MessageRepository.Update(ctx, uc.DB, message); err != nil {
		uc.Logger.WithError(err).Errorf("Failed to edit message %s: %v", messageID, err)
		return nil, apperr.Internal(err)
	}

	uc.Dispatcher.MessageEdited(audience, message.ID, newMessage)
	return message, nil
}

// Delete tombstones the message: the body is replaced with the sentinel and
// the row is kept, so ordering inside the chat never shifts.
func (uc *MessageUsecaseImpl) Delete(ctx context.Context, messageID, byEmail string) error {
	message, audience, err := uc.loadMessageWithAudience(ctx, messageID, byEmail)
	if err != nil {
		return err
	}
	if message.SenderEmail != byEmail {
		return apperr.Forbidden("Only the sender can delete a message")
	}

	message.Content = entity.TombstoneContent
	message.IsDeleted = true
	if err := uc.MessageRepository.Update(ctx, uc.DB, message); err != nil {
		uc.Logger.WithError(err).Errorf("Failed to delete message %s: %v", messageID, err)
		return apperr.Internal(err)
	}

	uc.Dispatcher.MessageDeleted(audience, message.ID)
	return nil
}

// Like appends the liker once. A second like by the same user is a Conflict
// and a tombstoned message no longer accepts likes.
func (uc *MessageUsecaseImpl) Like(ctx context.Context, messageID, likerEmail string) error {
	message, audience, err := uc.loadMessageWithAudience(ctx, messageID, likerEmail)
	if err != nil {
		return err
	}
	if message.IsDeleted {
		return apperr.NotFound("Message not Found")
	}

	liked, err := uc.MessageRepository.HasLike(ctx, uc.DB, messageID, likerEmail)
	if err != nil {
		return apperr.Internal(err)
	}
	if liked {
		return apperr.Conflict("Cannot like two times")
	}
	if err := uc.MessageRepository.AddLike(ctx, uc.DB, messageID, likerEmail); err != nil {
		// Unique index backstop for two concurrent likes by the same user.
		return apperr.Conflict("Cannot like two times")
	}

	uc.Dispatcher.MessageLiked(audience, message.ID, likerEmail)
	return nil
}

func (uc *MessageUsecaseImpl) GetMessages(ctx context.Context, containerID, requesterEmail string) ([]entity.Messages, error) {
	container, err := uc.ChatRepository.FindContainer(ctx, uc.DB, containerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if container == nil {
		return nil, apperr.NotFound("Chat not found")
	}
	if _, ok := audienceOf(container, requesterEmail); !ok {
		return nil, apperr.Forbidden("Not a participant of this chat")
	}

	messages, err := uc.MessageRepository.FindByChatID(ctx, uc.DB, container.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return messages, nil
}

func (uc *MessageUsecaseImpl) loadMessageWithAudience(ctx context.Context, messageID, actorEmail string) (*entity.Messages, []string, error) {
	message, err := uc.MessageRepository.FindByID(ctx, uc.DB, messageID)
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	if message == nil {
		return nil, nil, apperr.NotFound("Message not Found")
	}

	container, err := uc.ChatRepository.FindByID(ctx, uc.DB, message.ChatId)
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	if container == nil {
		return nil, nil, apperr.NotFound("Chat not found")
	}

	audience, ok := audienceOf(container, actorEmail)
	if !ok {
		return nil, nil, apperr.Forbidden("Not a participant of this chat")
	}
	return message, audience, nil
}

// audienceOf returns every participant email and whether actor is among them.
func audienceOf(container *entity.Chat, actorEmail string) ([]string, bool) {
	audience := make([]string, 0, len(container.Participants))
	isMember := false
	for _, p := range container.Participants {
		audience = append(audience, p.Email)
		if p.Email == actorEmail {
			isMember = true
		}
	}
	return audience, isMember
}
