package ioc

import (
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/robinlg/temple-platform/internal/api/web"
	"github.com/robinlg/temple-platform/internal/api/web/middleware/jwt"
	"github.com/robinlg/temple-platform/internal/api/web/middleware/log"
	"github.com/robinlg/temple-platform/internal/api/web/middleware/metrics"
	"github.com/robinlg/temple-platform/internal/api/web/middleware/ratelimit"
)

func InitWeb(public *web.PublicHandler, relayHdl *web.RelayHandler, admin *web.AdminHandler) *egin.Component {
	type JWTConfig struct {
		Key string `yaml:"key"`
	}
	var jwtCfg JWTConfig
	if err := econf.UnmarshalKey("jwt", &jwtCfg); err != nil {
		panic("config err:" + err.Error())
	}
	if jwtCfg.Key == "" {
		panic("config err: jwt.key 不能为空")
	}

	type RateLimitConfig struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	}
	rlCfg := RateLimitConfig{RPS: 5, Burst: 20}
	if err := econf.UnmarshalKey("ratelimit", &rlCfg); err != nil {
		panic("config err:" + err.Error())
	}

	server := egin.Load("server.http").Build()
	s := &web.Server{
		Public: public,
		Relay:  relayHdl,
		Admin:  admin,
		Middlewares: []gin.HandlerFunc{
			metrics.New().Build(),
			log.New().Build(),
		},
		RelayLimiter: ratelimit.New(rlCfg.RPS, rlCfg.Burst).Build(),
		AdminAuth:    jwt.New(jwtCfg.Key).Build(),
	}
	s.RegisterRoutes(server.Engine)
	return server
}
