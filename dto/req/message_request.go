package req

type NewMessageRequest struct {
	Message     string `json:"message" validate:"required"`
	MessageType string `json:"messageType"`
}

type EditMessageRequest struct {
	NewMessage string `json:"newMessage" validate:"required"`
}
