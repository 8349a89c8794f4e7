//go:build unit

package retry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoff_Next(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		strategy      *ExponentialBackoff
		steps         int
		wantIntervals []time.Duration
	}{
		{
			name:          "达到最大重试次数后停止",
			strategy:      NewExponentialBackoff(time.Second, 10*time.Second, 3),
			steps:         5,
			wantIntervals: []time.Duration{time.Second, 2 * time.Second, 4 * time.Second},
		},
		{
			name:          "间隔封顶",
			strategy:      NewExponentialBackoff(time.Second, 4*time.Second, 5),
			steps:         5,
			wantIntervals: []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 4 * time.Second, 4 * time.Second},
		},
		{
			name:          "初始间隔超过上限",
			strategy:      NewExponentialBackoff(10*time.Second, 4*time.Second, 2),
			steps:         3,
			wantIntervals: []time.Duration{4 * time.Second, 4 * time.Second},
		},
		{
			name:          "无限重试",
			strategy:      NewExponentialBackoff(time.Second, 30*time.Second, 0),
			steps:         100,
			wantIntervals: infinite(100, time.Second, 30*time.Second),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			intervals := make([]time.Duration, 0, tc.steps)
			for i := 0; i < tc.steps; i++ {
				interval, ok := tc.strategy.Next()
				if !ok {
					break
				}
				intervals = append(intervals, interval)
			}
			assert.Equal(t, tc.wantIntervals, intervals)
		})
	}
}

func infinite(n int, initial, maxInterval time.Duration) []time.Duration {
	res := make([]time.Duration, 0, n)
	interval := initial
	for i := 0; i < n; i++ {
		res = append(res, interval)
		interval *= 2
		if interval > maxInterval {
			interval = maxInterval
		}
	}
	return res
}

func TestExponentialBackoff_Reset(t *testing.T) {
	t.Parallel()

	b := NewExponentialBackoff(time.Second, time.Minute, 2)
	_, _ = b.Next()
	_, _ = b.Next()
	_, ok := b.Next()
	assert.False(t, ok)

	b.Reset()
	interval, ok := b.Next()
	assert.True(t, ok)
	assert.Equal(t, time.Second, interval)
}

func ExampleExponentialBackoff_Next() {
	b := NewExponentialBackoff(time.Second, 5*time.Second, 6)

	interval, ok := b.Next()
	for ok {
		fmt.Println(interval)
		interval, ok = b.Next()
	}
	// Output:
	// 1s
	// 2s
	// 4s
	// 5s
	// 5s
	// 5s
}
