//go:build unit

package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyInvalidator 前几次订阅直接失败，之后推送一条消息并阻塞
type flakyInvalidator struct {
	failures  int32
	attempts  atomic.Int32
	published chan domain.ConfigKey
}

func (f *flakyInvalidator) Publish(_ context.Context, key domain.ConfigKey) error {
	f.published <- key
	return nil
}

func (f *flakyInvalidator) Subscribe(ctx context.Context, fn func(key domain.ConfigKey)) error {
	if f.attempts.Add(1) <= f.failures {
		return errors.New("connection refused")
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case key := <-f.published:
			fn(key)
		}
	}
}

// recordingRepo 只记录 Invalidate 调用
type recordingRepo struct {
	ConfigRepository
	mu   sync.Mutex
	keys []domain.ConfigKey
}

func (r *recordingRepo) Invalidate(_ context.Context, key domain.ConfigKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
	return nil
}

func (r *recordingRepo) invalidated() []domain.ConfigKey {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ConfigKey(nil), r.keys...)
}

func TestInvalidationSubscriber(t *testing.T) {
	t.Parallel()

	inv := &flakyInvalidator{failures: 2, published: make(chan domain.ConfigKey)}
	repo := &recordingRepo{}
	s := NewInvalidationSubscriber(inv, repo)
	s.backoff = retry.NewExponentialBackoff(time.Millisecond, 5*time.Millisecond, 0)

	require.NoError(t, s.Start())
	require.NoError(t, inv.Publish(t.Context(), domain.ConfigKeyEmail))

	assert.Eventually(t, func() bool {
		return len(repo.invalidated()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []domain.ConfigKey{domain.ConfigKeyEmail}, repo.invalidated())
	assert.Equal(t, int32(3), inv.attempts.Load())

	require.NoError(t, s.Stop())
}

func TestInvalidationSubscriber_GiveUp(t *testing.T) {
	t.Parallel()

	inv := &flakyInvalidator{failures: 100}
	s := NewInvalidationSubscriber(inv, &recordingRepo{})
	s.backoff = retry.NewExponentialBackoff(time.Millisecond, time.Millisecond, 2)

	require.NoError(t, s.Start())
	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("没有在重试耗尽后退出")
	}
	assert.Equal(t, int32(3), inv.attempts.Load())
	require.NoError(t, s.Stop())
}
