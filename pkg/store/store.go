// Package store persists favorites and the auto-saved draft behind a small
// string key-value interface.
package store

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sitesmith/sitesmith-cli/pkg/files"
	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

// KeyValueStore is the storage capability the application needs.
// Get reports ok=false for an absent key without an error.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Open builds the backend selected in settings
func Open(settings models.StorageSettings, logger zerolog.Logger) (KeyValueStore, error) {
	switch settings.Backend {
	case "", models.BackendFile:
		return NewFileStore(files.StorePath()), nil
	case models.BackendMemory:
		return NewMemoryStore(), nil
	case models.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		})
		logger.Debug().Str("addr", settings.RedisAddr).Int("db", settings.RedisDB).Msg("using redis store")
		return NewRedisStore(client, settings.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s (must be: file, redis, or memory)", settings.Backend)
	}
}
