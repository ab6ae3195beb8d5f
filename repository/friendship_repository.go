package repository

import (
	"context"

	"gorm.io/gorm"

	"realtime-chat-backend/entity"
)

type FriendshipRepository struct {
	Repository[entity.Friendship]
}

func NewFriendshipRepository() *FriendshipRepository {
	return &FriendshipRepository{}
}

func (repository FriendshipRepository) AreFriends(ctx context.Context, db *gorm.DB, userEmail, friendEmail string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Friendship{}).
		Where("user_email = ? AND friend_email = ?", userEmail, friendEmail).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreatePair writes both mirrored rows so the relation stays symmetric.
// Callers run it inside the accept transaction.
func (repository FriendshipRepository) CreatePair(ctx context.Context, db *gorm.DB, emailA, emailB string) error {
	rows := []entity.Friendship{
		{UserEmail: emailA, FriendEmail: emailB},
		{UserEmail: emailB, FriendEmail: emailA},
	}
	return db.WithContext(ctx).Create(&rows).Error
}

// RemovePair deletes both directions physically so the pair can become
// friends again later without tripping the unique index.
func (repository FriendshipRepository) RemovePair(ctx context.Context, db *gorm.DB, emailA, emailB string) error {
	return db.WithContext(ctx).Unscoped().
		Where("(user_email = ? AND friend_email = ?) OR (user_email = ? AND friend_email = ?)",
			emailA, emailB, emailB, emailA).
		Delete(&entity.Friendship{}).Error
}

func (repository FriendshipRepository) FriendsOf(ctx context.Context, db *gorm.DB, userEmail string) ([]string, error) {
	var emails []string
	err := db.WithContext(ctx).
		Model(&entity.Friendship{}).
		Where("user_email = ?", userEmail).
		Pluck("friend_email", &emails).Error
	return emails, err
}
