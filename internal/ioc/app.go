package ioc

import (
	"github.com/gotomicro/ego/server/egin"
	"github.com/robinlg/temple-platform/internal/api/web"
	"github.com/robinlg/temple-platform/internal/repository"
	"github.com/robinlg/temple-platform/internal/repository/cache"
	"github.com/robinlg/temple-platform/internal/repository/cache/local"
	"github.com/robinlg/temple-platform/internal/repository/dao"
	configsvc "github.com/robinlg/temple-platform/internal/service/config"
	emailsvc "github.com/robinlg/temple-platform/internal/service/email"
	"github.com/robinlg/temple-platform/internal/service/storage"
)

type App struct {
	Web *egin.Component
	// Subscriber 接收其他实例的缓存失效消息
	Subscriber *repository.InvalidationSubscriber
}

// InitApp 手工组装依赖
func InitApp() *App {
	db := InitDB()
	invalidator := InitInvalidator()

	configRepo := repository.NewConfigRepository(
		dao.NewConfigDAO(db),
		local.NewCache(cache.DefaultExpiredTime),
		invalidator,
	)
	emailLogRepo := repository.NewEmailLogRepository(dao.NewEmailLogDAO(db))

	configSvc := configsvc.NewService(configRepo)
	emailSvc := emailsvc.NewService(configSvc, InitRelayClient(), emailLogRepo)
	storageSvc := storage.NewService(configSvc)

	server := InitWeb(
		web.NewPublicHandler(configSvc),
		web.NewRelayHandler(InitResendProvider()),
		web.NewAdminHandler(configSvc, emailSvc, storageSvc, emailLogRepo),
	)
	return &App{
		Web:        server,
		Subscriber: repository.NewInvalidationSubscriber(invalidator, configRepo),
	}
}
