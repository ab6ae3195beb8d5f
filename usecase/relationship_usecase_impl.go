package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"realtime-chat-backend/apperr"
	"realtime-chat-backend/dto/req"
	"realtime-chat-backend/entity"
	"realtime-chat-backend/enum"
	"realtime-chat-backend/realtime"
	"realtime-chat-backend/repository"
)

type RelationshipUsecaseImpl struct {
	*repository.UserRepository
	*repository.InviteRepository
	*repository.FriendshipRepository
	*repository.ChatRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	Dispatcher *realtime.Dispatcher
}

func NewRelationshipUsecase(
	userRepository *repository.UserRepository,
	inviteRepository *repository.InviteRepository,
	friendshipRepository *repository.FriendshipRepository,
	chatRepository *repository.ChatRepository,
	validate *validator.Validate,
	DB *gorm.DB,
	logger *logrus.Logger,
	dispatcher *realtime.Dispatcher,
) RelationshipUsecase {
	return &RelationshipUsecaseImpl{
		UserRepository:       userRepository,
		InviteRepository:     inviteRepository,
		FriendshipRepository: friendshipRepository,
		ChatRepository:       chatRepository,
		Validate:             validate,
		DB:                   DB,
		Logger:               logger,
		Dispatcher:           dispatcher,
	}
}

// CreateInvite appends a pending invite to the recipient's list and notifies
// the recipient's room. A mutual-invite race (the sender already holds a
// pending invite from the recipient) is resolved by rejecting this attempt.
func (uc *RelationshipUsecaseImpl) CreateInvite(ctx context.Context, senderEmail, recipientEmail string) error {
	if senderEmail == recipientEmail {
		return apperr.Conflict("Cannot invite yourself")
	}

	sender, err := uc.UserRepository.FindByEmail(ctx, uc.DB, senderEmail)
	if err != nil {
		return apperr.Internal(err)
	}
	recipient, err := uc.UserRepository.FindByEmail(ctx, uc.DB, recipientEmail)
	if err != nil {
		return apperr.Internal(err)
	}
	if sender == nil || recipient == nil {
		return apperr.NotFound("User not Exist with this email..")
	}

	friends, err := uc.FriendshipRepository.AreFriends(ctx, uc.DB, recipientEmail, senderEmail)
	if err != nil {
		return apperr.Internal(err)
	}
	if friends {
		return apperr.Conflict("User already added in the chat-list")
	}

	pending, err := uc.InviteRepository.FindPending(ctx, uc.DB, recipientEmail, senderEmail)
	if err != nil {
		return apperr.Internal(err)
	}
	if pending != nil {
		return apperr.Conflict("Invite already exists for this email.")
	}

	reverse, err := uc.InviteRepository.FindPending(ctx, uc.DB, senderEmail, recipientEmail)
	if err != nil {
		return apperr.Internal(err)
	}
	if reverse != nil {
		return apperr.Conflict("Invite already exists for this email.")
	}

	invite := &entity.Invite{
		RecipientEmail:   recipientEmail,
		SenderEmail:      sender.Email,
		SenderUsername:   sender.Username,
		SenderProfilePic: sender.ProfilePic,
	}
	if err := uc.InviteRepository.Save(ctx, uc.DB, invite); err != nil {
		// The unique index on (recipient, sender) backstops two duplicate
		// requests racing past the check above.
		return apperr.Conflict("Invite already exists for this email.")
	}

	uc.Dispatcher.NewInvite(recipientEmail, invite)
	return nil
}

// AcceptInvite performs the four-way mutation atomically: create the chat,
// link both chat lists, consume the invite and mirror the friendship. Either
// all of it lands or none of it is user-visible.
func (uc *RelationshipUsecaseImpl) AcceptInvite(ctx context.Context, recipientEmail, senderEmail string) (*entity.Chat, error) {
	recipient, err := uc.UserRepository.FindByEmail(ctx, uc.DB, recipientEmail)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	sender, err := uc.UserRepository.FindByEmail(ctx, uc.DB, senderEmail)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if recipient == nil || sender == nil {
		return nil, apperr.NotFound("One or both users not found")
	}

	pending, err := uc.InviteRepository.FindPending(ctx, uc.DB, recipientEmail, senderEmail)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if pending == nil {
		return nil, apperr.NotFound("User not Exist")
	}

	newChat := &entity.Chat{ChatType: enum.PRIVATE}
	participants := []entity.ChatParticipant{
		{Email: recipient.Email, Username: recipient.Username, ProfilePic: recipient.ProfilePic},
		{Email: sender.Email, Username: sender.Username, ProfilePic: sender.ProfilePic},
	}

	err = uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := uc.ChatRepository.CreateWithParticipants(ctx, tx, newChat, participants); err != nil {
			return err
		}
		if err := uc.InviteRepository.Remove(ctx, tx, recipientEmail, senderEmail); err != nil {
			return err
		}
		return uc.FriendshipRepository.CreatePair(ctx, tx, recipientEmail, senderEmail)
	})
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to accept invite from %s: %v", senderEmail, err)
		return nil, apperr.Internal(err)
	}

	uc.Dispatcher.ChatCreated(recipientEmail, newChat, "User added to your chatList")
	uc.Dispatcher.ChatCreated(senderEmail, newChat, "User added to the chatlist")
	return newChat, nil
}

// RejectInvite removes the pending invite. Rejecting an invite that does not
// exist is a no-op, which makes retries safe.
func (uc *RelationshipUsecaseImpl) RejectInvite(ctx context.Context, recipientEmail, senderEmail string) error {
	if err := uc.InviteRepository.Remove(ctx, uc.DB, recipientEmail, senderEmail); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// DeleteChat severs the relationship entirely: the chat, its messages and
// both friendship rows go away, and both rooms get a removeChat event.
func (uc *RelationshipUsecaseImpl) DeleteChat(ctx context.Context, chatID, byEmail string) error {
	chat, err := uc.ChatRepository.FindByID(ctx, uc.DB, chatID)
	if err != nil {
		return apperr.Internal(err)
	}
	if chat == nil {
		return apperr.NotFound("Chat not found")
	}
	if chat.ChatType != enum.PRIVATE {
		return apperr.Forbidden("Only personal chats can be removed")
	}

	var otherEmail string
	isMember := false
	for _, p := range chat.Participants {
		if p.Email == byEmail {
			isMember = true
		} else {
			otherEmail = p.Email
		}
	}
	if !isMember {
		return apperr.Forbidden("Not a participant of this chat")
	}

	err = uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := uc.FriendshipRepository.RemovePair(ctx, tx, byEmail, otherEmail); err != nil {
			return err
		}
		return uc.ChatRepository.DeleteCascade(ctx, tx, chatID)
	})
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to delete chat %s: %v", chatID, err)
		return apperr.Internal(err)
	}

	uc.Dispatcher.ChatRemoved([]string{byEmail, otherEmail}, chatID, "Removed chat")
	return nil
}

// CreateGroup creates a group container with a static member set and notifies
// every member's room. Membership never changes after this point.
func (uc *RelationshipUsecaseImpl) CreateGroup(ctx context.Context, adminEmail string, request *req.CreateGroupRequest) (*entity.Chat, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, apperr.Conflict(err.Error())
	}

	admin, err := uc.UserRepository.FindByEmail(ctx, uc.DB, adminEmail)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if admin == nil {
		return nil, apperr.NotFound("User not Exist with this email..")
	}

	members, err := uc.UserRepository.FindByEmails(ctx, uc.DB, request.Participants)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	newGroup := &entity.Chat{
		ChatType:   enum.GROUP,
		GroupName:  request.GroupName,
		GroupIcon:  request.GroupIcon,
		AdminEmail: admin.Email,
	}

	participants := make([]entity.ChatParticipant, 0, len(members)+1)
	participants = append(participants, entity.ChatParticipant{
		Email: admin.Email, Username: admin.Username, ProfilePic: admin.ProfilePic,
	})
	audience := []string{admin.Email}
	for _, member := range members {
		if member.Email == admin.Email {
			continue
		}
		participants = append(participants, entity.ChatParticipant{
			Email: member.Email, Username: member.Username, ProfilePic: member.ProfilePic,
		})
		audience = append(audience, member.Email)
	}

	if err := uc.ChatRepository.CreateWithParticipants(ctx, uc.DB, newGroup, participants); err != nil {
		uc.Logger.WithError(err).Errorf("Failed to create group %s: %v", request.GroupName, err)
		return nil, apperr.Internal(err)
	}

	uc.Dispatcher.GroupCreated(audience, newGroup, fmt.Sprintf("You were added to group %s", request.GroupName))
	return newGroup, nil
}

func (uc *RelationshipUsecaseImpl) GetInvites(ctx context.Context, email string) ([]entity.Invite, error) {
	invites, err := uc.InviteRepository.FindByRecipient(ctx, uc.DB, email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return invites, nil
}

func (uc *RelationshipUsecaseImpl) GetChats(ctx context.Context, email string) ([]entity.Chat, error) {
	chats, err := uc.ChatRepository.FindAllByUser(ctx, uc.DB, email, enum.PRIVATE)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return chats, nil
}

func (uc *RelationshipUsecaseImpl) GetGroups(ctx context.Context, email string) ([]entity.Chat, error) {
	groups, err := uc.ChatRepository.FindAllByUser(ctx, uc.DB, email, enum.GROUP)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return groups, nil
}
