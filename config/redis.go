package config

import (
	"context"

	"github.com/redis/go-redis/v9"

	"realtime-chat-backend/config/common"
	"realtime-chat-backend/config/logger"
)

func NewRedisClient(cfg *common.Config, log *logger.AppLogger) *redis.Client {
	addr, password, db := cfg.GetRedisConfig()

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		// Presence is best-effort: a dead redis degrades online checks but
		// must not stop the server from starting.
		log.Http.Warning.Warn().Err(err).Msg("failed to connect to redis, presence will report offline")
	}

	return client
}
