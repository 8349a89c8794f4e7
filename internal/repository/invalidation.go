package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/pkg/retry"
	"github.com/robinlg/temple-platform/internal/repository/cache"
)

// InvalidationSubscriber 后台订阅其他实例的失效消息，收到后丢弃对应的本地缓存
// 连接断开后按指数退避重新订阅
type InvalidationSubscriber struct {
	invalidator cache.Invalidator
	repo        ConfigRepository
	backoff     retry.Strategy
	logger      *elog.Component

	cancel context.CancelFunc
	done   chan struct{}
}

func NewInvalidationSubscriber(invalidator cache.Invalidator, repo ConfigRepository) *InvalidationSubscriber {
	return &InvalidationSubscriber{
		invalidator: invalidator,
		repo:        repo,
		backoff:     retry.NewExponentialBackoff(time.Second, 30*time.Second, 0),
		logger:      elog.DefaultLogger,
	}
}

// Start 立即返回，订阅在后台进行
func (s *InvalidationSubscriber) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx)
	return nil
}

// Stop 等待后台订阅退出
func (s *InvalidationSubscriber) Stop() error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	<-s.done
	return nil
}

func (s *InvalidationSubscriber) run(ctx context.Context) {
	defer close(s.done)
	for {
		err := s.invalidator.Subscribe(ctx, func(key domain.ConfigKey) {
			// 收到消息说明订阅正常
			s.backoff.Reset()
			if err := s.repo.Invalidate(ctx, key); err != nil {
				s.logger.Error("丢弃本地缓存失败", elog.String("key", key.String()), elog.FieldErr(err))
			}
		})
		if ctx.Err() != nil {
			return
		}
		if err == nil || errors.Is(err, context.Canceled) {
			err = errors.New("订阅意外结束")
		}
		interval, ok := s.backoff.Next()
		if !ok {
			s.logger.Error("放弃订阅缓存失效消息", elog.FieldErr(err))
			return
		}
		s.logger.Warn("订阅缓存失效消息失败，稍后重试",
			elog.FieldErr(err),
			elog.Duration("interval", interval))
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
