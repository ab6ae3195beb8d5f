package realtime

import "realtime-chat-backend/entity"

// Event payload shapes. Field names match the wire contract.

type ChatCreatedPayload struct {
	NewChat *entity.Chat `json:"newChat"`
	Message string       `json:"message"`
}

type GroupCreatedPayload struct {
	NewChat *entity.Chat `json:"newChat"`
	IsGroup bool         `json:"isGroup"`
	Message string       `json:"message"`
}

type ChatRemovedPayload struct {
	Message string `json:"message"`
	ChatID  string `json:"chatId"`
}

type NewMessagePayload struct {
	Message *entity.Messages `json:"message"`
	ChatID  string           `json:"chatId"`
}

type MessageDeletedPayload struct {
	MessageID string `json:"messageId"`
}

type MessageEditedPayload struct {
	MessageID  string `json:"messageId"`
	NewMessage string `json:"newMessage"`
}

type MessageLikedPayload struct {
	MessageID string `json:"messageId"`
	Email     string `json:"email"`
}

// Dispatcher resolves nothing itself: given an audience of user emails it
// pushes one typed event into each identity room.
type Dispatcher struct {
	router Router
}

func NewDispatcher(router Router) *Dispatcher {
	return &Dispatcher{router: router}
}

func (d *Dispatcher) NewInvite(recipient string, invite *entity.Invite) {
	d.router.Emit(recipient, EventNewInvite, invite)
}

// ChatCreated notifies one side of a freshly accepted invite. Each side gets
// its own message text, so the caller emits twice.
func (d *Dispatcher) ChatCreated(recipient string, chat *entity.Chat, message string) {
	d.router.Emit(recipient, EventCreateChat, ChatCreatedPayload{NewChat: chat, Message: message})
}

func (d *Dispatcher) GroupCreated(audience []string, group *entity.Chat, message string) {
	payload := GroupCreatedPayload{NewChat: group, IsGroup: true, Message: message}
	for _, email := range audience {
		d.router.Emit(email, EventCreateGroup, payload)
	}
}

func (d *Dispatcher) ChatRemoved(audience []string, chatID, message string) {
	payload := ChatRemovedPayload{Message: message, ChatID: chatID}
	for _, email := range audience {
		d.router.Emit(email, EventRemoveChat, payload)
	}
}

func (d *Dispatcher) NewMessage(audience []string, message *entity.Messages, chatID string) {
	payload := NewMessagePayload{Message: message, ChatID: chatID}
	for _, email := range audience {
		d.router.Emit(email, EventNewMessage, payload)
	}
}

func (d *Dispatcher) MessageDeleted(audience []string, messageID string) {
	payload := MessageDeletedPayload{MessageID: messageID}
	for _, email := range audience {
		d.router.Emit(email, EventDeleteMessage, payload)
	}
}

func (d *Dispatcher) MessageEdited(audience []string, messageID, newMessage string) {
	payload := MessageEditedPayload{MessageID: messageID, NewMessage: newMessage}
	for _, email := range audience {
		d.router.Emit(email, EventMessageEdited, payload)
	}
}

func (d *Dispatcher) MessageLiked(audience []string, messageID, likerEmail string) {
	payload := MessageLikedPayload{MessageID: messageID, Email: likerEmail}
	for _, email := range audience {
		d.router.Emit(email, EventLikeMessage, payload)
	}
}
