package store

import (
	"fmt"

	"lingo-gate/internal/types"

	"github.com/sirupsen/logrus"
)

// NewStore creates a Store based on the configuration. Redis is used when a
// REDIS_DSN is configured; otherwise an in-process memory store is used.
func NewStore(configManager types.ConfigManager) (Store, error) {
	redisDSN := configManager.GetRedisDSN()

	if redisDSN == "" {
		logrus.Debug("Using memory store")
		return NewMemoryStore(), nil
	}

	logrus.Debug("Using redis store")
	redisStore, err := NewRedisStore(redisDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return redisStore, nil
}
