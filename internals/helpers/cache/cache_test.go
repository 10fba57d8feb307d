package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolverKey(t *testing.T) {
	eID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	cID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	nilID := uuid.Nil

	tests := []struct {
		name       string
		enrollment *uuid.UUID
		class      *uuid.UUID
		want       string
	}{
		{name: "enrollment preferido", enrollment: &eID, class: &cID, want: "tl:resolve:e:" + eID.String()},
		{name: "fallback class", class: &cID, want: "tl:resolve:c:" + cID.String()},
		{name: "uuid nil conta como ausente", enrollment: &nilID, class: &cID, want: "tl:resolve:c:" + cID.String()},
		{name: "sentinela", want: "tl:resolve:none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolverKey(tt.enrollment, tt.class))
		})
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok := m.Get(ctx, "missing")
	assert.False(t, ok)

	m.Set(ctx, "tl:resolve:e:abc", "v1", 0)
	m.Set(ctx, "tl:resolve:c:def", "v2", 0)
	m.Set(ctx, "other:key", "v3", 0)

	v, ok := m.Get(ctx, "tl:resolve:e:abc")
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	m.Invalidate(ctx, "tl:resolve:e:abc")
	_, ok = m.Get(ctx, "tl:resolve:e:abc")
	assert.False(t, ok)

	m.InvalidatePrefix(ctx, ResolverPrefix())
	_, ok = m.Get(ctx, "tl:resolve:c:def")
	assert.False(t, ok)

	v, ok = m.Get(ctx, "other:key")
	assert.True(t, ok)
	assert.Equal(t, "v3", v)
}

func TestMemoryCacheTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "k", "v", time.Nanosecond)
	time.Sleep(5 * time.Millisecond)
	_, ok := m.Get(ctx, "k")
	assert.False(t, ok)
}
