package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	ca "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// idleExpiration 客户端一段时间没有请求后丢弃它的令牌桶
const idleExpiration = 10 * time.Minute

// Builder 按客户端IP限流的中间件构建器
type Builder struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters *ca.Cache
}

// New rps 每秒放行的请求数，burst 允许的突发数
func New(rps float64, burst int) *Builder {
	if burst <= 0 {
		burst = 1
	}
	return &Builder{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: ca.New(idleExpiration, 2*idleExpiration),
	}
}

func (b *Builder) limiter(ip string) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.limiters.Get(ip); ok {
		// 刷新过期时间
		b.limiters.SetDefault(ip, v)
		return v.(*rate.Limiter)
	}
	l := rate.NewLimiter(b.limit, b.burst)
	b.limiters.SetDefault(ip, l)
	return l
}

// Build 来自本机回环地址的连接不限流，服务端自己转发到中继接口的请求走这里。
// 判断用的是连接的对端地址，不看 X-Forwarded-For
func (b *Builder) Build() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isLoopback(c.RemoteIP()) {
			c.Next()
			return
		}
		if !b.limiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}

func isLoopback(ip string) bool {
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsLoopback()
}
