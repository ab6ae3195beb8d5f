package entity

// ChatUser is keyed by email everywhere: the email is both the store lookup
// key and the socket room name of the user.
type ChatUser struct {
	BaseEntity
	Email      string `json:"email" gorm:"unique;type:varchar(100);not null"`
	Username   string `json:"username" gorm:"type:varchar(100);not null"`
	Password   string `json:"-" gorm:"type:varchar(255);not null"`
	ProfilePic string `json:"profilePic" gorm:"type:TEXT"`
	Background int    `json:"background" gorm:"default:1"`

	Invites     []Invite     `json:"inviteList,omitempty" gorm:"foreignKey:RecipientEmail;references:Email;constraint:OnDelete:CASCADE;"`
	Friendships []Friendship `json:"-" gorm:"foreignKey:UserEmail;references:Email;constraint:OnDelete:CASCADE;"`
}
