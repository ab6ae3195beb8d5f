// Package presence maintains the best-effort online view: an expiring record
// per user, refreshed by heartbeats. Absence of a live record means offline,
// so no explicit cleanup is required on disconnect.
package presence

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const keyPrefix = "online:"

// DefaultTTL bounds the staleness of the presence view. Heartbeats must
// arrive at a shorter interval to keep a connected user online.
const DefaultTTL = 5 * time.Second

type Registry struct {
	store Store
	log   *logrus.Logger
	ttl   time.Duration
}

func NewRegistry(store Store, log *logrus.Logger, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{store: store, log: log, ttl: ttl}
}

func (r *Registry) TTL() time.Duration {
	return r.ttl
}

// MarkOnline upserts the record for email, overwriting any prior connection
// handle (last write wins across devices).
func (r *Registry) MarkOnline(ctx context.Context, email, connID string) {
	if err := r.store.Set(ctx, keyPrefix+email, connID, r.ttl); err != nil {
		r.log.WithError(err).Warnf("Failed to mark user online: %s", email)
	}
}

// Heartbeat refreshes the record; it is identical to MarkOnline on purpose,
// an initial join and a refresh are not distinguished.
func (r *Registry) Heartbeat(ctx context.Context, email, connID string) {
	r.MarkOnline(ctx, email, connID)
}

// MarkOffline removes the record on a graceful disconnect. Optional: without
// it the record expires after the TTL anyway.
func (r *Registry) MarkOffline(ctx context.Context, email string) {
	if err := r.store.Delete(ctx, keyPrefix+email); err != nil {
		r.log.WithError(err).Warnf("Failed to mark user offline: %s", email)
	}
}

// IsOnline reports whether an unexpired record exists. Store failures are
// swallowed and reported as offline so presence never blocks messaging.
func (r *Registry) IsOnline(ctx context.Context, email string) bool {
	online, err := r.store.Exists(ctx, keyPrefix+email)
	if err != nil {
		r.log.WithError(err).Warnf("Presence lookup failed for %s", email)
		return false
	}
	return online
}

// BatchOnlineStatus returns the subset of emails currently online using a
// single pipelined store round trip.
func (r *Registry) BatchOnlineStatus(ctx context.Context, emails []string) []string {
	if len(emails) == 0 {
		return nil
	}
	keys := make([]string, len(emails))
	for i, email := range emails {
		keys[i] = keyPrefix + email
	}
	results, err := r.store.PipelinedExists(ctx, keys)
	if err != nil {
		r.log.WithError(err).Warn("Bulk presence lookup failed")
		return nil
	}
	var online []string
	for i, ok := range results {
		if ok {
			online = append(online, emails[i])
		}
	}
	return online
}
