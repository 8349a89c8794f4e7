package id_generator

import (
	"sync"
	"time"

	"github.com/robinlg/temple-platform/internal/pkg/hash"
)

// ID 结构：41位毫秒时间戳 | 10位hash | 12位序列号
const (
	timestampBits = 41
	hashBits      = 10
	sequenceBits  = 12

	hashShift      = sequenceBits
	timestampShift = hashBits + sequenceBits

	sequenceMask  = (1 << sequenceBits) - 1
	hashMask      = (1 << hashBits) - 1
	timestampMask = (1 << timestampBits) - 1

	// 2025-01-01 00:00:00 UTC
	epochMillis = int64(1735689600000)
)

// Generator 雪花算法变种，同一毫秒内序列号递增，用完后等到下一毫秒
type Generator struct {
	mu       sync.Mutex
	lastTime int64
	sequence int64
	now      func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// GenerateID scope 是邮件类型，key 是收件人
func (g *Generator) GenerateID(scope, key string) int64 {
	hashValue := hash.Hash(scope, key)

	g.mu.Lock()
	ts := g.now().UnixMilli() - epochMillis
	if ts < g.lastTime {
		// 时钟回拨时沿用上次的时间戳，保证不重复
		ts = g.lastTime
	}
	if ts == g.lastTime {
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			for ts <= g.lastTime {
				time.Sleep(100 * time.Microsecond)
				ts = g.now().UnixMilli() - epochMillis
			}
		}
	} else {
		g.sequence = 0
	}
	g.lastTime = ts
	seq := g.sequence
	g.mu.Unlock()

	return (ts&timestampMask)<<timestampShift |
		(hashValue&hashMask)<<hashShift |
		seq
}

// ExtractTimestamp 从ID中提取时间戳
func ExtractTimestamp(id int64) time.Time {
	ts := (id >> timestampShift) & timestampMask
	return time.UnixMilli(ts + epochMillis)
}

// ExtractHashValue 从ID中提取hash值
func ExtractHashValue(id int64) int64 {
	return (id >> hashShift) & hashMask
}

// ExtractSequence 从ID中提取序列号
func ExtractSequence(id int64) int64 {
	return id & sequenceMask
}
