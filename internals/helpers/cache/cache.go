// file: internals/helpers/cache/cache.go
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cache é o serviço explícito de memoização do portal: chave composta bem
// definida, TTL e invalidação disparada pelas mutações do editor (em vez do
// cache implícito por sessão).
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Invalidate(ctx context.Context, keys ...string)
	InvalidatePrefix(ctx context.Context, prefix string)
}

const resolverPrefix = "tl:resolve:"

// ResolverKey: enrollment tem preferência sobre class; sem nenhum, sentinela.
func ResolverKey(enrollmentID, classID *uuid.UUID) string {
	switch {
	case enrollmentID != nil && *enrollmentID != uuid.Nil:
		return resolverPrefix + "e:" + enrollmentID.String()
	case classID != nil && *classID != uuid.Nil:
		return resolverPrefix + "c:" + classID.String()
	default:
		return resolverPrefix + "none"
	}
}

func ResolverPrefix() string { return resolverPrefix }

/* ===============================
   Redis-backed
=================================*/

type Redis struct {
	Client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{Client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	if r == nil || r.Client == nil {
		return "", false
	}
	v, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if r == nil || r.Client == nil {
		return
	}
	_ = r.Client.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) Invalidate(ctx context.Context, keys ...string) {
	if r == nil || r.Client == nil || len(keys) == 0 {
		return
	}
	_ = r.Client.Del(ctx, keys...).Err()
}

func (r *Redis) InvalidatePrefix(ctx context.Context, prefix string) {
	if r == nil || r.Client == nil {
		return
	}
	iter := r.Client.Scan(ctx, 0, prefix+"*", 200).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		_ = r.Client.Del(ctx, keys...).Err()
	}
}

/* ===============================
   In-memory (dev/testes)
=================================*/

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return "", false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return "", false
	}
	return e.value, true
}

func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	m.entries[key] = memoryEntry{value: value, expiresAt: exp}
}

func (m *Memory) Invalidate(_ context.Context, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
	}
}

func (m *Memory) InvalidatePrefix(_ context.Context, prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
}
