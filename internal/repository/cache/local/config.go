package local

import (
	"context"
	"errors"
	"time"

	ca "github.com/patrickmn/go-cache"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/repository/cache"
)

var _ cache.ConfigCache = (*Cache)(nil)

// Cache 进程内缓存，只存找到的文档
type Cache struct {
	c *ca.Cache
}

// NewCache expiration 是有效期，<=0 时用默认值
func NewCache(expiration time.Duration) *Cache {
	if expiration <= 0 {
		expiration = cache.DefaultExpiredTime
	}
	return &Cache{
		c: ca.New(expiration, 2*expiration),
	}
}

func (l *Cache) Get(_ context.Context, key domain.ConfigKey) (domain.ConfigEntry, error) {
	v, ok := l.c.Get(cache.ConfigKey(key))
	if !ok {
		return domain.ConfigEntry{}, cache.ErrKeyNotFound
	}
	vv, ok := v.(domain.ConfigEntry)
	if !ok {
		return domain.ConfigEntry{}, errors.New("数据类型不正确")
	}
	vv.Value = vv.Value.Clone()
	return vv, nil
}

func (l *Cache) Set(_ context.Context, entry domain.ConfigEntry) error {
	entry.Value = entry.Value.Clone()
	l.c.SetDefault(cache.ConfigKey(entry.Key), entry)
	return nil
}

func (l *Cache) Del(_ context.Context, key domain.ConfigKey) error {
	l.c.Delete(cache.ConfigKey(key))
	return nil
}

func (l *Cache) Clear(_ context.Context) error {
	l.c.Flush()
	return nil
}

// Len 当前缓存条目数，包含已过期但还没清理的
func (l *Cache) Len() int {
	return l.c.ItemCount()
}
