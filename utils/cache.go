// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"ecoskip/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SessionCacheClient holds the booking wizard sessions.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for booking sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := SessionCacheClient.Ping(ctx).Err(); err != nil {
		GetLogger().Fatal("Failed to connect to Redis (Sessions)", zap.Error(err))
	}
}

// GetSessionCacheClient returns the booking session client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
