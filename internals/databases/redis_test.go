package database

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisHealthyWithoutClient(t *testing.T) {
	prev := RDB
	RDB = nil
	defer func() { RDB = prev }()

	assert.False(t, RedisHealthy())
}

func TestRedisHealthyUnreachable(t *testing.T) {
	prev := RDB
	RDB = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer func() {
		_ = RDB.Close()
		RDB = prev
	}()

	assert.False(t, RedisHealthy())
}
