//go:build unit

package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		scope1 string
		key1   string
		scope2 string
		key2   string
		equal  bool
	}{
		{
			name:   "相同输入结果相同",
			scope1: "receipt",
			key1:   "devotee@example.com",
			scope2: "receipt",
			key2:   "devotee@example.com",
			equal:  true,
		},
		{
			name:   "不同类型结果不同",
			scope1: "receipt",
			key1:   "devotee@example.com",
			scope2: "thankYou",
			key2:   "devotee@example.com",
		},
		{
			name:   "拼接边界不同结果不同",
			scope1: "ab",
			key1:   "c",
			scope2: "a",
			key2:   "bc",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h1 := Hash(tc.scope1, tc.key1)
			h2 := Hash(tc.scope2, tc.key2)
			assert.GreaterOrEqual(t, h1, int64(0))
			assert.GreaterOrEqual(t, h2, int64(0))
			if tc.equal {
				assert.Equal(t, h1, h2)
			} else {
				assert.NotEqual(t, h1, h2)
			}
		})
	}
}

func TestHashNoCollision(t *testing.T) {
	t.Parallel()
	const testSize = 1000
	seen := make(map[int64]string, testSize)
	for i := 0; i < testSize; i++ {
		key := fmt.Sprintf("devotee%d@example.com", i)
		h := Hash("receipt", key)
		if prev, ok := seen[h]; ok {
			t.Fatalf("哈希冲突: %s 和 %s 得到相同的值 %d", prev, key, h)
		}
		seen[h] = key
	}
}
