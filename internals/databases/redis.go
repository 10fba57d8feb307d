package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"escolaviva_backend/internals/configs"
)

var RDB *redis.Client

// ConnectRedis abre o client com timeouts curtos; cache é best-effort,
// o serviço sobe mesmo sem Redis disponível.
func ConnectRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:         configs.RedisAddr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := RDB.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis indisponível (%v), cache degradado", err)
		return
	}
	log.Println("✅ Redis connected.")
}

// RedisHealthy pinga o client com timeout próprio; seguro chamar sem client.
func RedisHealthy() bool {
	if RDB == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return RDB.Ping(ctx).Err() == nil
}
