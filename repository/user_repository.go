package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"realtime-chat-backend/entity"
)

type UserRepository struct {
	Repository[entity.ChatUser]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByEmail returns (nil, nil) when no user exists so callers can map the
// miss to NotFound without inspecting gorm errors.
func (repository UserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.ChatUser, error) {
	var user entity.ChatUser
	err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repository UserRepository) FindByEmails(ctx context.Context, db *gorm.DB, emails []string) ([]entity.ChatUser, error) {
	var users []entity.ChatUser
	err := db.WithContext(ctx).Where("email IN ?", emails).Find(&users).Error
	return users, err
}
