//go:build unit

package local

import (
	"testing"
	"time"

	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/repository/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Minute)
	ctx := t.Context()

	_, err := c.Get(ctx, domain.ConfigKeySite)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)

	value := domain.ConfigValue{"templeName": "SLPPV", "social": map[string]any{"youtube": "@slppv"}}
	require.NoError(t, c.Set(ctx, domain.ConfigEntry{Key: domain.ConfigKeySite, Value: value}))
	// 写入后改原始数据不影响缓存
	value["templeName"] = "changed"
	value["social"].(map[string]any)["youtube"] = "changed"

	entry, err := c.Get(ctx, domain.ConfigKeySite)
	require.NoError(t, err)
	assert.Equal(t, "SLPPV", entry.Value["templeName"])
	assert.Equal(t, "@slppv", entry.Value["social"].(map[string]any)["youtube"])

	require.NoError(t, c.Set(ctx, domain.ConfigEntry{Key: domain.ConfigKeyEmail, Value: domain.ConfigValue{}}))
	assert.Equal(t, 2, c.Len())

	require.NoError(t, c.Del(ctx, domain.ConfigKeySite))
	_, err = c.Get(ctx, domain.ConfigKeySite)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)

	require.NoError(t, c.Clear(ctx))
	assert.Equal(t, 0, c.Len())
}

func TestCache_Expiration(t *testing.T) {
	t.Parallel()

	c := NewCache(30 * time.Millisecond)
	require.NoError(t, c.Set(t.Context(), domain.ConfigEntry{Key: domain.ConfigKeyR2, Value: domain.ConfigValue{}}))
	_, err := c.Get(t.Context(), domain.ConfigKeyR2)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	_, err = c.Get(t.Context(), domain.ConfigKeyR2)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}
