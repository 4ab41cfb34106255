package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"bookease/config"
)

// RegistryClient is the Redis client backing the attendee registry store,
// the only durable store in the system.
var RegistryClient *redis.Client

// InitRegistryStore initializes the Redis client for attendee persistence.
func InitRegistryStore() {
	RegistryClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRegistryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RegistryClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Registry): %v", err)
	}
}

// GetRegistryClient returns the Redis client for attendee persistence.
func GetRegistryClient() *redis.Client {
	if RegistryClient == nil {
		InitRegistryStore()
	}
	return RegistryClient
}
