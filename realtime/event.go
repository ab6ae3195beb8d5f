// Package realtime carries state-changing events to connected clients. Rooms
// are keyed by user email, one room per identity, so a user receives every
// event addressed to them no matter which conversation it belongs to.
package realtime

// Wire event names. Casing and spacing are part of the client contract.
const (
	EventJoin              = "join"
	EventHeartbeat         = "heartbeat"
	EventCheckOnlineStatus = "checkOnlineStatus"
	EventOnlineStatus      = "onlineStatusUpdate"

	EventNewInvite     = "newInvite"
	EventCreateChat    = "createChat"
	EventCreateGroup   = "createGroup"
	EventRemoveChat    = "removeChat"
	EventNewMessage    = "newMessage"
	EventDeleteMessage = "deleteMessage"
	EventMessageEdited = "Message Edited"
	EventLikeMessage   = "likemessage"
)

// Envelope is the frame read from and written to every websocket connection.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
