package entity

import "realtime-chat-backend/enum"

// TombstoneContent replaces the body of a deleted message. A delete never
// removes the row, so message ordering inside a chat stays stable.
const TombstoneContent = "deleted"

type Messages struct {
	BaseEntity
	Content     string           `json:"message" gorm:"type:TEXT;not null"`
	ChatId      string           `json:"chatId" gorm:"type:varchar(255);not null;index"`
	SenderEmail string           `json:"senderEmail" gorm:"type:varchar(100);not null"`
	MessageType enum.MessageType `json:"messageType" gorm:"type:varchar(10);default:'text'"`
	IsEdited    bool             `json:"edited" gorm:"default:false"`
	IsDeleted   bool             `json:"deleted" gorm:"default:false"`

	Likes []MessageLike `json:"like" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE;"`
	Chat  Chat          `json:"-" gorm:"foreignKey:ChatId;references:ID"`
}
