package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/redis/go-redis/v9"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/repository/cache"
)

var _ cache.Invalidator = (*Invalidator)(nil)

// Invalidator 用 Redis pub/sub 广播配置变更
// 缓存本身仍然只在进程内，Redis 里不存配置数据
type Invalidator struct {
	rdb     redis.UniversalClient
	channel string
	// origin 本实例的标识，收到自己发出的消息时跳过
	origin  string
	logger  *elog.Component
}

func NewInvalidator(rdb redis.UniversalClient) *Invalidator {
	return &Invalidator{
		rdb:     rdb,
		channel: cache.InvalidationChannel,
		origin:  uuid.NewString(),
		logger:  elog.DefaultLogger,
	}
}

type invalidation struct {
	Origin string `json:"origin"`
	Key    string `json:"key"`
}

func (i *Invalidator) encode(key domain.ConfigKey) (string, error) {
	data, err := json.Marshal(invalidation{Origin: i.origin, Key: key.String()})
	return string(data), err
}

// handle 只处理其他实例发出的消息，ok 为 false 表示跳过
func (i *Invalidator) handle(payload string) (domain.ConfigKey, bool) {
	var msg invalidation
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		// 旧版本直接发送 key
		return domain.ConfigKey(payload), payload != ""
	}
	if msg.Origin == i.origin || msg.Key == "" {
		return "", false
	}
	return domain.ConfigKey(msg.Key), true
}

func (i *Invalidator) Publish(ctx context.Context, key domain.ConfigKey) error {
	payload, err := i.encode(key)
	if err != nil {
		return fmt.Errorf("failed to encode config invalidation %w", err)
	}
	err = i.rdb.Publish(ctx, i.channel, payload).Err()
	if err != nil {
		return fmt.Errorf("failed to publish config invalidation %w", err)
	}
	return nil
}

func (i *Invalidator) Subscribe(ctx context.Context, fn func(key domain.ConfigKey)) error {
	sub := i.rdb.Subscribe(ctx, i.channel)
	defer func() {
		if err := sub.Close(); err != nil {
			i.logger.Error("关闭订阅失败", elog.FieldErr(err))
		}
	}()
	// 确认订阅成功再开始消费
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe config invalidation %w", err)
	}
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if key, ok := i.handle(msg.Payload); ok {
				fn(key)
			}
		}
	}
}

// NopInvalidator 单实例部署时使用
type NopInvalidator struct{}

func (NopInvalidator) Publish(context.Context, domain.ConfigKey) error {
	return nil
}

func (NopInvalidator) Subscribe(ctx context.Context, _ func(key domain.ConfigKey)) error {
	<-ctx.Done()
	return ctx.Err()
}
