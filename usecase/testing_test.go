package usecase

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"realtime-chat-backend/entity"
	"realtime-chat-backend/realtime"
	"realtime-chat-backend/repository"
)

type emittedEvent struct {
	room  string
	event string
	data  any
}

type recordingRouter struct {
	emitted []emittedEvent
}

func (r *recordingRouter) Emit(room, event string, data any) {
	r.emitted = append(r.emitted, emittedEvent{room: room, event: event, data: data})
}

func (r *recordingRouter) eventsFor(room string) []emittedEvent {
	var events []emittedEvent
	for _, e := range r.emitted {
		if e.room == room {
			events = append(events, e)
		}
	}
	return events
}

func (r *recordingRouter) reset() {
	r.emitted = nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.ChatUser{},
		&entity.Invite{},
		&entity.Friendship{},
		&entity.Chat{},
		&entity.ChatParticipant{},
		&entity.Messages{},
		&entity.MessageLike{},
	)
	require.NoError(t, err)
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type testEnv struct {
	db           *gorm.DB
	router       *recordingRouter
	relationship RelationshipUsecase
	messages     MessageUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	router := &recordingRouter{}
	dispatcher := realtime.NewDispatcher(router)
	log := quietLogger()

	userRepo := repository.NewUserRepository()
	inviteRepo := repository.NewInviteRepository()
	friendshipRepo := repository.NewFriendshipRepository()
	chatRepo := repository.NewChatRepository()
	messageRepo := repository.NewMessageRepository()

	return &testEnv{
		db:     db,
		router: router,
		relationship: NewRelationshipUsecase(
			userRepo, inviteRepo, friendshipRepo, chatRepo,
			validator.New(), db, log, dispatcher,
		),
		messages: NewMessageUsecase(messageRepo, chatRepo, db, log, dispatcher),
	}
}

func (env *testEnv) seedUser(t *testing.T, email, username string) *entity.ChatUser {
	t.Helper()
	user := &entity.ChatUser{
		Email:      email,
		Username:   username,
		Password:   "hashed",
		ProfilePic: "/uploads/defaults/avatar-1.jpg",
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

// befriend runs the invite/accept flow and returns the created chat.
func (env *testEnv) befriend(t *testing.T, a, b string) *entity.Chat {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, env.relationship.CreateInvite(ctx, a, b))
	chat, err := env.relationship.AcceptInvite(ctx, b, a)
	require.NoError(t, err)
	env.router.reset()
	return chat
}
