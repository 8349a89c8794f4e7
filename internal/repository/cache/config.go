package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robinlg/temple-platform/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

const (
	ConfigPrefix = "config"
	// DefaultExpiredTime 本地缓存有效期，超过之后必须回源
	DefaultExpiredTime = 5 * time.Minute
	// InvalidationChannel 多实例之间广播失效消息的频道
	InvalidationChannel = "config:invalidate"
)

type ConfigCache interface {
	Get(ctx context.Context, key domain.ConfigKey) (domain.ConfigEntry, error)
	Set(ctx context.Context, entry domain.ConfigEntry) error
	Del(ctx context.Context, key domain.ConfigKey) error
	// Clear 清空全部缓存
	Clear(ctx context.Context) error
}

// Invalidator 通知其他实例丢弃本地缓存
type Invalidator interface {
	Publish(ctx context.Context, key domain.ConfigKey) error
	// Subscribe 阻塞直到 ctx 被取消，收到的每个 key 都会回调 fn
	Subscribe(ctx context.Context, fn func(key domain.ConfigKey)) error
}

func ConfigKey(key domain.ConfigKey) string {
	return fmt.Sprintf("%s:%s", ConfigPrefix, key)
}
