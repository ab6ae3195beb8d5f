package realtime

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	written []Envelope
	failing bool
	closed  bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	if c.failing {
		return errors.New("broken pipe")
	}
	c.written = append(c.written, v.(Envelope))
	return nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func newTestHub() *Hub {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewHub(log)
}

func TestEmitReachesOnlyJoinedConnections(t *testing.T) {
	hub := newTestHub()
	a := &fakeConn{}
	b := &fakeConn{}

	hub.Join(a, "a@x.com")
	hub.Join(b, "b@x.com")

	hub.Emit("a@x.com", EventNewInvite, "payload")

	require.Len(t, a.written, 1)
	assert.Equal(t, EventNewInvite, a.written[0].Event)
	assert.Empty(t, b.written)
}

func TestEmitToEmptyRoomIsNoOp(t *testing.T) {
	hub := newTestHub()

	// Fire-and-forget: nobody joined, nothing happens.
	hub.Emit("ghost@x.com", EventNewMessage, "payload")
}

func TestEmitDeliversAtMostOncePerConnection(t *testing.T) {
	hub := newTestHub()
	a := &fakeConn{}

	hub.Join(a, "a@x.com")
	hub.Join(a, "a@x.com")

	hub.Emit("a@x.com", EventNewMessage, "payload")
	assert.Len(t, a.written, 1)
}

func TestEmitPreservesPerRoomOrder(t *testing.T) {
	hub := newTestHub()
	a := &fakeConn{}
	hub.Join(a, "a@x.com")

	hub.Emit("a@x.com", EventNewMessage, "first")
	hub.Emit("a@x.com", EventDeleteMessage, "second")
	hub.Emit("a@x.com", EventLikeMessage, "third")

	require.Len(t, a.written, 3)
	assert.Equal(t, EventNewMessage, a.written[0].Event)
	assert.Equal(t, EventDeleteMessage, a.written[1].Event)
	assert.Equal(t, EventLikeMessage, a.written[2].Event)
}

func TestConnectionMayJoinSeveralRooms(t *testing.T) {
	hub := newTestHub()
	a := &fakeConn{}

	hub.Join(a, "a@x.com")
	hub.Join(a, "other-room")

	hub.Emit("a@x.com", EventNewMessage, "one")
	hub.Emit("other-room", EventNewMessage, "two")

	assert.Len(t, a.written, 2)
}

func TestLeaveRemovesFromAllRooms(t *testing.T) {
	hub := newTestHub()
	a := &fakeConn{}

	hub.Join(a, "a@x.com")
	hub.Join(a, "other-room")
	hub.Leave(a)

	hub.Emit("a@x.com", EventNewMessage, "payload")
	hub.Emit("other-room", EventNewMessage, "payload")

	assert.Empty(t, a.written)
	assert.Equal(t, 0, hub.RoomSize("a@x.com"))
}

func TestFailedWriteDropsConnection(t *testing.T) {
	hub := newTestHub()
	broken := &fakeConn{failing: true}
	healthy := &fakeConn{}

	hub.Join(broken, "a@x.com")
	hub.Join(healthy, "a@x.com")

	hub.Emit("a@x.com", EventNewMessage, "payload")

	assert.True(t, broken.closed)
	assert.Equal(t, 1, hub.RoomSize("a@x.com"))

	// Subsequent emits only reach the healthy connection.
	hub.Emit("a@x.com", EventNewMessage, "payload")
	assert.Len(t, healthy.written, 2)
}
