package entity

// Invite lives in the recipient's invite list. The composite unique index
// guarantees at most one pending invite per sender/recipient pair even when
// two duplicate requests race past the application-level check.
type Invite struct {
	BaseEntity
	RecipientEmail   string `json:"-" gorm:"type:varchar(100);not null;uniqueIndex:idx_invite_pair"`
	SenderEmail      string `json:"email" gorm:"type:varchar(100);not null;uniqueIndex:idx_invite_pair"`
	SenderUsername   string `json:"username" gorm:"type:varchar(100)"`
	SenderProfilePic string `json:"profilePic" gorm:"type:TEXT"`
}
