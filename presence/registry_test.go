package presence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implements Store in memory with real expiry deadlines.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]fakeRecord
	failing bool
}

type fakeRecord struct {
	value     string
	expiresAt time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]fakeRecord)}
}

func (s *fakeStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errors.New("store unavailable")
	}
	s.records[key] = fakeRecord{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *fakeStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return false, errors.New("store unavailable")
	}
	record, ok := s.records[key]
	return ok && time.Now().Before(record.expiresAt), nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errors.New("store unavailable")
	}
	delete(s.records, key)
	return nil
}

func (s *fakeStore) PipelinedExists(ctx context.Context, keys []string) ([]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return nil, errors.New("store unavailable")
	}
	results := make([]bool, len(keys))
	for i, key := range keys {
		record, ok := s.records[key]
		results[i] = ok && time.Now().Before(record.expiresAt)
	}
	return results, nil
}

func newTestRegistry(ttl time.Duration) (*Registry, *fakeStore) {
	store := newFakeStore()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewRegistry(store, log, ttl), store
}

func TestMarkOnlineThenIsOnline(t *testing.T) {
	registry, _ := newTestRegistry(time.Second)
	ctx := context.Background()

	assert.False(t, registry.IsOnline(ctx, "a@x.com"))

	registry.MarkOnline(ctx, "a@x.com", "conn-1")
	assert.True(t, registry.IsOnline(ctx, "a@x.com"))
}

func TestRecordExpiresAfterTTL(t *testing.T) {
	registry, _ := newTestRegistry(50 * time.Millisecond)
	ctx := context.Background()

	registry.MarkOnline(ctx, "a@x.com", "conn-1")
	require.True(t, registry.IsOnline(ctx, "a@x.com"))

	time.Sleep(80 * time.Millisecond)
	assert.False(t, registry.IsOnline(ctx, "a@x.com"))
}

func TestHeartbeatRefreshesTTL(t *testing.T) {
	registry, _ := newTestRegistry(80 * time.Millisecond)
	ctx := context.Background()

	registry.MarkOnline(ctx, "a@x.com", "conn-1")
	time.Sleep(50 * time.Millisecond)
	registry.Heartbeat(ctx, "a@x.com", "conn-1")
	time.Sleep(50 * time.Millisecond)

	// Without the heartbeat the record would already have expired.
	assert.True(t, registry.IsOnline(ctx, "a@x.com"))
}

func TestLastWriteWinsAcrossConnections(t *testing.T) {
	registry, store := newTestRegistry(time.Second)
	ctx := context.Background()

	registry.MarkOnline(ctx, "a@x.com", "conn-1")
	registry.MarkOnline(ctx, "a@x.com", "conn-2")

	record := store.records["online:a@x.com"]
	assert.Equal(t, "conn-2", record.value)
}

func TestMarkOffline(t *testing.T) {
	registry, _ := newTestRegistry(time.Second)
	ctx := context.Background()

	registry.MarkOnline(ctx, "a@x.com", "conn-1")
	registry.MarkOffline(ctx, "a@x.com")

	assert.False(t, registry.IsOnline(ctx, "a@x.com"))
}

func TestBatchOnlineStatusReturnsOnlineSubset(t *testing.T) {
	registry, _ := newTestRegistry(time.Second)
	ctx := context.Background()

	registry.MarkOnline(ctx, "a@x.com", "conn-1")
	registry.MarkOnline(ctx, "c@x.com", "conn-3")

	online := registry.BatchOnlineStatus(ctx, []string{"a@x.com", "b@x.com", "c@x.com"})
	assert.Equal(t, []string{"a@x.com", "c@x.com"}, online)
}

func TestBatchOnlineStatusEmptyInput(t *testing.T) {
	registry, _ := newTestRegistry(time.Second)

	assert.Nil(t, registry.BatchOnlineStatus(context.Background(), nil))
}

func TestStoreFailuresAreSwallowed(t *testing.T) {
	registry, store := newTestRegistry(time.Second)
	ctx := context.Background()
	store.failing = true

	// None of these may panic or propagate the store error.
	registry.MarkOnline(ctx, "a@x.com", "conn-1")
	registry.Heartbeat(ctx, "a@x.com", "conn-1")
	registry.MarkOffline(ctx, "a@x.com")

	assert.False(t, registry.IsOnline(ctx, "a@x.com"))
	assert.Nil(t, registry.BatchOnlineStatus(ctx, []string{"a@x.com"}))
}

func TestDefaultTTLApplied(t *testing.T) {
	registry, _ := newTestRegistry(0)
	assert.Equal(t, DefaultTTL, registry.TTL())
}
