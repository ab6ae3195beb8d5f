package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"realtime-chat-backend/enum"
)

// Chat is the message container: a personal chat holds exactly two
// participants, a group holds the admin plus the invited members. Group
// fields stay empty for personal chats.
type Chat struct {
	BaseEntity
	ChatType   enum.ChatType `json:"chatType" gorm:"type:varchar(10);not null"`
	GroupName  string        `json:"groupName,omitempty" gorm:"type:varchar(100)"`
	GroupIcon  string        `json:"groupIcon,omitempty" gorm:"type:TEXT"`
	AdminEmail string        `json:"admin,omitempty" gorm:"type:varchar(100)"`

	Participants []ChatParticipant `json:"participants" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE;"`
	Messages     []Messages        `json:"messages,omitempty" gorm:"foreignKey:ChatId;constraint:OnDelete:CASCADE;"`
}

type ChatParticipant struct {
	ID         string `json:"-" gorm:"primaryKey;type:varchar(255)"`
	ChatID     string `json:"-" gorm:"type:varchar(255);not null;index"`
	Email      string `json:"email" gorm:"type:varchar(100);not null"`
	Username   string `json:"username" gorm:"type:varchar(100)"`
	ProfilePic string `json:"profilePic" gorm:"type:TEXT"`
}

func (p *ChatParticipant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
