package log

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Builder 访问日志中间件构建器
type Builder struct {
	logger *elog.Component
}

// New 创建访问日志中间件构建器
func New() *Builder {
	return &Builder{
		logger: elog.DefaultLogger,
	}
}

// WithLogger 设置日志组件
func (b *Builder) WithLogger(logger *elog.Component) *Builder {
	b.logger = logger
	return b
}

// Build 请求体里可能有密钥，只记录元数据
func (b *Builder) Build() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime)
		fields := []elog.Field{
			elog.String("method", c.Request.Method),
			elog.String("path", c.Request.URL.Path),
			elog.Int("status", c.Writer.Status()),
			elog.Int("size", c.Writer.Size()),
			elog.String("client_ip", c.ClientIP()),
			elog.Duration("duration", duration),
		}
		if len(c.Errors) > 0 {
			b.logger.Error("HTTP response with error",
				append(fields, elog.String("errors", c.Errors.String()))...)
			return
		}
		if c.Writer.Status() >= 500 {
			b.logger.Error("HTTP response", fields...)
			return
		}
		b.logger.Info("HTTP response", fields...)
	}
}
