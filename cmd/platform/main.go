package main

import (
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/temple-platform/internal/ioc"
)

func main() {
	// 创建 ego 应用实例
	egoApp := ego.New()

	app := ioc.InitApp()

	if err := egoApp.
		Invoker(app.Subscriber.Start).
		Serve(app.Web).
		Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
	_ = app.Subscriber.Stop()
}
