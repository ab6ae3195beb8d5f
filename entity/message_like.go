package entity

// MessageLike records one like per user per message. The composite unique
// index enforces at-most-one even under concurrent double-like requests.
type MessageLike struct {
	BaseEntity
	MessageID string `json:"-" gorm:"type:varchar(255);not null;uniqueIndex:idx_like_pair"`
	UserEmail string `json:"email" gorm:"type:varchar(100);not null;uniqueIndex:idx_like_pair"`
}
