package entity

// Friendship is one direction of a symmetric relation. Accepting an invite
// writes both mirrored rows in a single transaction, so A is in B's friend
// list iff B is in A's.
type Friendship struct {
	BaseEntity
	UserEmail   string `json:"userEmail" gorm:"type:varchar(100);not null;uniqueIndex:idx_friend_pair"`
	FriendEmail string `json:"friendEmail" gorm:"type:varchar(100);not null;uniqueIndex:idx_friend_pair"`
}
