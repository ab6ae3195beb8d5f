package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"realtime-chat-backend/entity"
)

type MessageRepository struct {
	Repository[entity.Messages]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (repository MessageRepository) FindByID(ctx context.Context, db *gorm.DB, messageID string) (*entity.Messages, error) {
	var message entity.Messages
	err := db.WithContext(ctx).Preload("Likes").Where("id = ?", messageID).First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (repository MessageRepository) FindByChatID(ctx context.Context, db *gorm.DB, chatID string) ([]entity.Messages, error) {
	var messages []entity.Messages
	err := db.WithContext(ctx).
		Preload("Likes").
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (repository MessageRepository) HasLike(ctx context.Context, db *gorm.DB, messageID, userEmail string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.MessageLike{}).
		Where("message_id = ? AND user_email = ?", messageID, userEmail).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repository MessageRepository) AddLike(ctx context.Context, db *gorm.DB, messageID, userEmail string) error {
	like := entity.MessageLike{MessageID: messageID, UserEmail: userEmail}
	return db.WithContext(ctx).Create(&like).Error
}
