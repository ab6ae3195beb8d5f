package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"realtime-chat-backend/entity"
	"realtime-chat-backend/enum"
)

type ChatRepository struct {
	Repository[entity.Chat]
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

func (repository ChatRepository) FindByID(ctx context.Context, db *gorm.DB, chatID string) (*entity.Chat, error) {
	var chat entity.Chat
	err := db.WithContext(ctx).Preload("Participants").Where("id = ?", chatID).First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// FindContainer resolves a message container by id: personal chat first, then
// group. Returns (nil, nil) when neither exists.
func (repository ChatRepository) FindContainer(ctx context.Context, db *gorm.DB, containerID string) (*entity.Chat, error) {
	var chat entity.Chat
	err := db.WithContext(ctx).
		Preload("Participants").
		Where("id = ? AND chat_type = ?", containerID, enum.PRIVATE).
		First(&chat).Error
	if err == nil {
		return &chat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.WithContext(ctx).
		Preload("Participants").
		Where("id = ? AND chat_type = ?", containerID, enum.GROUP).
		First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (repository ChatRepository) CreateWithParticipants(ctx context.Context, db *gorm.DB, chat *entity.Chat, participants []entity.ChatParticipant) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		for i := range participants {
			participants[i].ChatID = chat.ID
		}
		if err := tx.Create(&participants).Error; err != nil {
			return err
		}
		chat.Participants = participants
		return nil
	})
}

func (repository ChatRepository) FindAllByUser(ctx context.Context, db *gorm.DB, email string, chatType enum.ChatType) ([]entity.Chat, error) {
	var chats []entity.Chat
	err := db.WithContext(ctx).
		Model(&entity.Chat{}).
		Joins("JOIN chat_participants cp ON cp.chat_id = chats.id").
		Where("cp.email = ? AND chats.chat_type = ?", email, chatType).
		Preload("Participants").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (repository ChatRepository) IsParticipant(ctx context.Context, db *gorm.DB, chatID, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.ChatParticipant{}).
		Where("chat_id = ? AND email = ?", chatID, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteCascade removes the chat, its participant rows and every message it
// owns. Messages are removed physically here; the per-message tombstone only
// applies while the chat is alive.
func (repository ChatRepository) DeleteCascade(ctx context.Context, db *gorm.DB, chatID string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chatID).Unscoped().Delete(&entity.Messages{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chat_id = ?", chatID).Delete(&entity.ChatParticipant{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", chatID).Unscoped().Delete(&entity.Chat{}).Error
	})
}
