package usecase

import (
	"context"

	"realtime-chat-backend/dto/req"
	"realtime-chat-backend/entity"
)

// RelationshipUsecase governs the invite -> friend transitions and the
// chat/group membership of each user.
type RelationshipUsecase interface {
	CreateInvite(ctx context.Context, senderEmail, recipientEmail string) error
	AcceptInvite(ctx context.Context, recipientEmail, senderEmail string) (*entity.Chat, error)
	RejectInvite(ctx context.Context, recipientEmail, senderEmail string) error
	DeleteChat(ctx context.Context, chatID, byEmail string) error
	CreateGroup(ctx context.Context, adminEmail string, request *req.CreateGroupRequest) (*entity.Chat, error)
	GetInvites(ctx context.Context, email string) ([]entity.Invite, error)
	GetChats(ctx context.Context, email string) ([]entity.Chat, error)
	GetGroups(ctx context.Context, email string) ([]entity.Chat, error)
}
