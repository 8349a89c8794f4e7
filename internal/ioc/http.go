package ioc

import (
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/robinlg/temple-platform/internal/service/email/provider"
	"github.com/robinlg/temple-platform/internal/service/email/relay"
)

// InitRelayClient 邮件中继地址，一般就是本服务自己
func InitRelayClient() relay.Client {
	return relay.NewClient(ehttp.Load("relay").Build())
}

func InitResendProvider() provider.Provider {
	return provider.NewResendProvider(ehttp.Load("resend").Build())
}
