package retry

import (
	"sync"
	"time"
)

// Strategy 重试间隔策略
type Strategy interface {
	// Next 返回下一次重试前需要等待的时间，第二个返回值为 false 表示不再重试
	Next() (time.Duration, bool)
	// Reset 一次成功之后从头开始计算
	Reset()
}

// ExponentialBackoff 指数退避，间隔每次翻倍，封顶 maxInterval
type ExponentialBackoff struct {
	initialInterval time.Duration
	maxInterval     time.Duration
	// <=0 表示无限重试
	maxRetries int32

	mu      sync.Mutex
	retries int32
}

func NewExponentialBackoff(initialInterval, maxInterval time.Duration, maxRetries int32) *ExponentialBackoff {
	return &ExponentialBackoff{
		initialInterval: initialInterval,
		maxInterval:     maxInterval,
		maxRetries:      maxRetries,
	}
}

func (b *ExponentialBackoff) Next() (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.maxRetries > 0 && b.retries >= b.maxRetries {
		return 0, false
	}
	b.retries++
	interval := b.initialInterval
	for i := int32(1); i < b.retries; i++ {
		interval *= 2
		// 溢出或者超过上限
		if interval <= 0 || interval >= b.maxInterval {
			return b.maxInterval, true
		}
	}
	if interval > b.maxInterval {
		return b.maxInterval, true
	}
	return interval, true
}

func (b *ExponentialBackoff) Reset() {
	b.mu.Lock()
	b.retries = 0
	b.mu.Unlock()
}
