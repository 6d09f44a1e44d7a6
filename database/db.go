// File: database/db.go
package database

import (
	"context"
	"log"
	"time"

	"harithakarmabhoomi/config"

	"github.com/go-redis/redis/v8"
)

var (
	// RecordClient backs the record store (users, bookings, complaints,
	// exchanges, reports, rate table).
	RecordClient *redis.Client
	// SessionClient is the dedicated client for session pointers.
	SessionClient *redis.Client
)

// InitRecordStore initializes the Redis client backing the record store.
func InitRecordStore() {
	RecordClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRecordDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RecordClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Records): %v", err)
	}
}

// GetRecordClient returns the record store client.
func GetRecordClient() *redis.Client {
	if RecordClient == nil {
		InitRecordStore()
	}
	return RecordClient
}

// InitSessionStore initializes the Redis client for session pointers.
func InitSessionStore() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the Redis client for session pointers.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionStore()
	}
	return SessionClient
}
