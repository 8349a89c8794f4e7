package web

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server 汇总全部路由
type Server struct {
	Public *PublicHandler
	Relay  *RelayHandler
	Admin  *AdminHandler

	// Middlewares 所有路由共用，例如访问日志和指标
	Middlewares []gin.HandlerFunc
	// RelayLimiter 只作用在中继接口上
	RelayLimiter gin.HandlerFunc
	// AdminAuth 管理后台鉴权
	AdminAuth gin.HandlerFunc
}

func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.Use(s.Middlewares...)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.Public.RegisterRoutes(engine)

	var relayMiddlewares []gin.HandlerFunc
	if s.RelayLimiter != nil {
		relayMiddlewares = append(relayMiddlewares, s.RelayLimiter)
	}
	s.Relay.RegisterRoutes(engine, relayMiddlewares...)

	admin := engine.Group("/api/admin")
	if s.AdminAuth != nil {
		admin.Use(s.AdminAuth)
	}
	s.Admin.RegisterRoutes(admin)
}
