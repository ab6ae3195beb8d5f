package usecase

import (
	"context"

	"realtime-chat-backend/entity"
	"realtime-chat-backend/enum"
)

// MessageUsecase governs the message lifecycle: created, edited in place,
// tombstoned on delete, liked at most once per user. Every mutation fans out
// to the live participant set of the owning container.
type MessageUsecase interface {
	Send(ctx context.Context, containerID, senderEmail, content string, messageType enum.MessageType) (*entity.Messages, error)
	Edit(ctx context.Context, messageID, byEmail, newMessage string) (*entity.Messages, error)
	Delete(ctx context.Context, messageID, byEmail string) error
	Like(ctx context.Context, messageID, likerEmail string) error
	GetMessages(ctx context.Context, containerID, requesterEmail string) ([]entity.Messages, error)
}
