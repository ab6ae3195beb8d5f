package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtime-chat-backend/apperr"
	"realtime-chat-backend/dto/req"
	"realtime-chat-backend/entity"
	"realtime-chat-backend/enum"
	"realtime-chat-backend/realtime"
)

func (env *testEnv) makeGroup(t *testing.T, admin string, members ...string) *entity.Chat {
	t.Helper()
	group, err := env.relationship.CreateGroup(context.Background(), admin, &req.CreateGroupRequest{
		GroupName:    "gophers",
		Participants: members,
	})
	require.NoError(t, err)
	env.router.reset()
	return group
}

func TestSendMessageFansOutToBothParticipants(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	message, err := env.messages.Send(ctx, chat.ID, "alice@x.com", "hello bob", enum.MessageTypeText)
	require.NoError(t, err)
	assert.Equal(t, "hello bob", message.Content)
	assert.Equal(t, "alice@x.com", message.SenderEmail)
	assert.Equal(t, chat.ID, message.ChatId)
	assert.False(t, message.IsEdited)
	assert.False(t, message.IsDeleted)

	// Sender included, so their other devices catch up too.
	for _, email := range []string{"alice@x.com", "bob@x.com"} {
		events := env.router.eventsFor(email)
		require.Len(t, events, 1, "missing newMessage for %s", email)
		assert.Equal(t, realtime.EventNewMessage, events[0].event)
		payload := events[0].data.(realtime.NewMessagePayload)
		assert.Equal(t, chat.ID, payload.ChatID)
		assert.Equal(t, "hello bob", payload.Message.Content)
	}
}

func TestSendMessageDefaultsToTextType(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")

	message, err := env.messages.Send(context.Background(), chat.ID, "alice@x.com", "hi", "")
	require.NoError(t, err)
	assert.Equal(t, enum.MessageTypeText, message.MessageType)
}

func TestSendMessageToUnknownContainer(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")

	_, err := env.messages.Send(context.Background(), "no-such-chat", "alice@x.com", "hi", enum.MessageTypeText)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSendMessageByNonParticipant(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	env.seedUser(t, "mallory@x.com", "mallory")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")

	_, err := env.messages.Send(context.Background(), chat.ID, "mallory@x.com", "hi", enum.MessageTypeText)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.Empty(t, env.router.emitted)
}

func TestMessagesOrderedOldestFirst(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		_, err := env.messages.Send(ctx, chat.ID, "alice@x.com", content, enum.MessageTypeText)
		require.NoError(t, err)
	}

	messages, err := env.messages.GetMessages(ctx, chat.ID, "bob@x.com")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestGetMessagesByNonParticipant(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	env.seedUser(t, "mallory@x.com", "mallory")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")

	_, err := env.messages.GetMessages(context.Background(), chat.ID, "mallory@x.com")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestEditMessageRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	message, err := env.messages.Send(ctx, chat.ID, "alice@x.com", "helo", enum.MessageTypeText)
	require.NoError(t, err)
	env.router.reset()

	edited, err := env.messages.Edit(ctx, message.ID, "alice@x.com", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", edited.Content)
	assert.True(t, edited.IsEdited)

	messages, err := env.messages.GetMessages(ctx, chat.ID, "bob@x.com")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Content)
	assert.True(t, messages[0].IsEdited)

	for _, email := range []string{"alice@x.com", "bob@x.com"} {
		events := env.router.eventsFor(email)
		require.Len(t, events, 1)
		assert.Equal(t, realtime.EventMessageEdited, events[0].event)
		payload := events[0].data.(realtime.MessageEditedPayload)
		assert.Equal(t, message.ID, payload.MessageID)
		assert.Equal(t, "hello", payload.NewMessage)
	}
}

func TestEditMessageBySomeoneElse(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	message, err := env.messages.Send(ctx, chat.ID, "alice@x.com", "mine", enum.MessageTypeText)
	require.NoError(t, err)

	_, err = env.messages.Edit(ctx, message.ID, "bob@x.com", "yours now")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestDeleteMessageLeavesTombstone(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	message, err := env.messages.Send(ctx, chat.ID, "alice@x.com", "secret", enum.MessageTypeText)
	require.NoError(t, err)
	env.router.reset()

	require.NoError(t, env.messages.Delete(ctx, message.ID, "alice@x.com"))

	// The row stays so ordering never shifts, but the body is unrecoverable.
	messages, err := env.messages.GetMessages(ctx, chat.ID, "bob@x.com")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, entity.TombstoneContent, messages[0].Content)
	assert.True(t, messages[0].IsDeleted)

	for _, email := range []string{"alice@x.com", "bob@x.com"} {
		events := env.router.eventsFor(email)
		require.Len(t, events, 1)
		assert.Equal(t, realtime.EventDeleteMessage, events[0].event)
	}
}

func TestDeleteMessageBySomeoneElse(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	message, err := env.messages.Send(ctx, chat.ID, "alice@x.com", "mine", enum.MessageTypeText)
	require.NoError(t, err)

	err = env.messages.Delete(ctx, message.ID, "bob@x.com")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestEditDeletedMessageIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	message, err := env.messages.Send(ctx, chat.ID, "alice@x.com", "gone soon", enum.MessageTypeText)
	require.NoError(t, err)
	require.NoError(t, env.messages.Delete(ctx, message.ID, "alice@x.com"))

	_, err = env.messages.Edit(ctx, message.ID, "alice@x.com", "resurrect")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestLikeMessage(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	message, err := env.messages.Send(ctx, chat.ID, "alice@x.com", "like me", enum.MessageTypeText)
	require.NoError(t, err)
	env.router.reset()

	require.NoError(t, env.messages.Like(ctx, message.ID, "bob@x.com"))

	messages, err := env.messages.GetMessages(ctx, chat.ID, "alice@x.com")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Likes, 1)
	assert.Equal(t, "bob@x.com", messages[0].Likes[0].UserEmail)

	for _, email := range []string{"alice@x.com", "bob@x.com"} {
		events := env.router.eventsFor(email)
		require.Len(t, events, 1)
		assert.Equal(t, realtime.EventLikeMessage, events[0].event)
		payload := events[0].data.(realtime.MessageLikedPayload)
		assert.Equal(t, message.ID, payload.MessageID)
		assert.Equal(t, "bob@x.com", payload.Email)
	}
}

func TestLikeTwiceIsConflict(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	message, err := env.messages.Send(ctx, chat.ID, "alice@x.com", "like me", enum.MessageTypeText)
	require.NoError(t, err)

	require.NoError(t, env.messages.Like(ctx, message.ID, "bob@x.com"))
	err = env.messages.Like(ctx, message.ID, "bob@x.com")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// The like count is unchanged after the rejected attempt.
	messages, err := env.messages.GetMessages(ctx, chat.ID, "alice@x.com")
	require.NoError(t, err)
	assert.Len(t, messages[0].Likes, 1)
}

func TestBothParticipantsMayLike(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	message, err := env.messages.Send(ctx, chat.ID, "alice@x.com", "like me", enum.MessageTypeText)
	require.NoError(t, err)

	require.NoError(t, env.messages.Like(ctx, message.ID, "bob@x.com"))
	require.NoError(t, env.messages.Like(ctx, message.ID, "alice@x.com"))

	messages, err := env.messages.GetMessages(ctx, chat.ID, "alice@x.com")
	require.NoError(t, err)
	assert.Len(t, messages[0].Likes, 2)
}

func TestLikeDeletedMessageIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	chat := env.befriend(t, "alice@x.com", "bob@x.com")
	ctx := context.Background()

	message, err := env.messages.Send(ctx, chat.ID, "alice@x.com", "gone", enum.MessageTypeText)
	require.NoError(t, err)
	require.NoError(t, env.messages.Delete(ctx, message.ID, "alice@x.com"))

	err = env.messages.Like(ctx, message.ID, "bob@x.com")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGroupMessageMutationsReachEveryMember(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@x.com", "alice")
	env.seedUser(t, "bob@x.com", "bob")
	env.seedUser(t, "carol@x.com", "carol")
	group := env.makeGroup(t, "alice@x.com", "bob@x.com", "carol@x.com")
	ctx := context.Background()
	everyone := []string{"alice@x.com", "bob@x.com", "carol@x.com"}

	message, err := env.messages.Send(ctx, group.ID, "bob@x.com", "hi all", enum.MessageTypeText)
	require.NoError(t, err)
	for _, email := range everyone {
		assert.Len(t, env.router.eventsFor(email), 1, "missing newMessage for %s", email)
	}

	env.router.reset()
	_, err = env.messages.Edit(ctx, message.ID, "bob@x.com", "hello all")
	require.NoError(t, err)
	for _, email := range everyone {
		assert.Len(t, env.router.eventsFor(email), 1, "missing messageEdited for %s", email)
	}

	env.router.reset()
	require.NoError(t, env.messages.Like(ctx, message.ID, "carol@x.com"))
	for _, email := range everyone {
		assert.Len(t, env.router.eventsFor(email), 1, "missing likemessage for %s", email)
	}

	env.router.reset()
	require.NoError(t, env.messages.Delete(ctx, message.ID, "bob@x.com"))
	for _, email := range everyone {
		assert.Len(t, env.router.eventsFor(email), 1, "missing deleteMessage for %s", email)
	}
}
