package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"realtime-chat-backend/entity"
)

type InviteRepository struct {
	Repository[entity.Invite]
}

func NewInviteRepository() *InviteRepository {
	return &InviteRepository{}
}

func (repository InviteRepository) FindPending(ctx context.Context, db *gorm.DB, recipientEmail, senderEmail string) (*entity.Invite, error) {
	var invite entity.Invite
	err := db.WithContext(ctx).
		Where("recipient_email = ? AND sender_email = ?", recipientEmail, senderEmail).
		First(&invite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (repository InviteRepository) FindByRecipient(ctx context.Context, db *gorm.DB, recipientEmail string) ([]entity.Invite, error) {
	var invites []entity.Invite
	err := db.WithContext(ctx).Where("recipient_email = ?", recipientEmail).Find(&invites).Error
	return invites, err
}

// Remove deletes the matching pending invite. Removing an absent invite is
// not an error, which makes reject idempotent. The delete is physical so a
// later re-invite does not collide with the unique pair index.
func (repository InviteRepository) Remove(ctx context.Context, db *gorm.DB, recipientEmail, senderEmail string) error {
	return db.WithContext(ctx).Unscoped().
		Where("recipient_email = ? AND sender_email = ?", recipientEmail, senderEmail).
		Delete(&entity.Invite{}).Error
}
