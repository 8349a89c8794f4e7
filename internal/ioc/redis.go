package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
	"github.com/robinlg/temple-platform/internal/repository/cache"
	rediscache "github.com/robinlg/temple-platform/internal/repository/cache/redis"
)

// InitInvalidator 没有配置 redis.addr 时按单实例部署处理
func InitInvalidator() cache.Invalidator {
	addr := econf.GetString("redis.addr")
	if addr == "" {
		return rediscache.NopInvalidator{}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: econf.GetString("redis.password"),
	})
	return rediscache.NewInvalidator(rdb)
}
