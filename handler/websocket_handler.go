package handler

import (
	"context"
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"realtime-chat-backend/presence"
	"realtime-chat-backend/realtime"
)

// WebSocketHandler owns the inbound side of the realtime contract: a client
// joins the room named after its own email, heartbeats to stay present and
// may ask for the online subset of its contacts.
type WebSocketHandler struct {
	*logrus.Logger
	Hub      *realtime.Hub
	Presence *presence.Registry
}

func NewWebSocketHandler(logger *logrus.Logger, hub *realtime.Hub, registry *presence.Registry) *WebSocketHandler {
	return &WebSocketHandler{Logger: logger, Hub: hub, Presence: registry}
}

type inboundEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func (handler *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	ctx := context.Background()
	connID := uuid.New().String()
	var joinedEmail string

	defer func() {
		handler.Hub.Leave(c)
		if joinedEmail != "" {
			// Graceful-disconnect courtesy; the TTL would expire the record
			// on its own within the presence window.
			handler.Presence.MarkOffline(ctx, joinedEmail)
		}
		c.Close()
	}()

	for {
		var envelope inboundEnvelope
		if err := c.ReadJSON(&envelope); err != nil {
			handler.Logger.Warnf("Read error: %v", err)
			break
		}

		switch envelope.Event {
		case realtime.EventJoin:
			var email string
			if err := json.Unmarshal(envelope.Data, &email); err != nil || email == "" {
				handler.Logger.Warnf("Invalid join payload: %s", envelope.Data)
				continue
			}
			joinedEmail = email
			handler.Hub.Join(c, email)
			handler.Presence.MarkOnline(ctx, email, connID)

		case realtime.EventHeartbeat:
			var email string
			if err := json.Unmarshal(envelope.Data, &email); err != nil || email == "" {
				continue
			}
			handler.Presence.Heartbeat(ctx, email, connID)

		case realtime.EventCheckOnlineStatus:
			var emails []string
			if err := json.Unmarshal(envelope.Data, &emails); err != nil {
				handler.Logger.Warnf("Invalid checkOnlineStatus payload: %s", envelope.Data)
				continue
			}
			online := handler.Presence.BatchOnlineStatus(ctx, emails)
			if online == nil {
				online = []string{}
			}
			// Reply only to the asking connection, not to the room.
			reply := realtime.Envelope{Event: realtime.EventOnlineStatus, Data: online}
			if err := c.WriteJSON(reply); err != nil {
				handler.Logger.Warnf("Failed to send online status: %v", err)
				return
			}

		default:
			handler.Logger.Warnf("Unknown websocket event: %s", envelope.Event)
		}
	}
}
