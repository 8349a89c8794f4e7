//go:build unit

package web

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/robinlg/temple-platform/internal/api/web/middleware/jwt"
	"github.com/robinlg/temple-platform/internal/api/web/middleware/log"
	"github.com/robinlg/temple-platform/internal/api/web/middleware/metrics"
	configmocks "github.com/robinlg/temple-platform/internal/service/config/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestServer_RegisterRoutes(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configSvc := configmocks.NewMockService(ctrl)
	s := &Server{
		Public: NewPublicHandler(configSvc),
		Relay:  NewRelayHandler(nil),
		Admin:  NewAdminHandler(configSvc, nil, nil, nil),
		Middlewares: []gin.HandlerFunc{
			metrics.New().Build(),
			log.New().Build(),
		},
		AdminAuth: jwt.New("test-key").Build(),
	}
	engine := gin.New()
	s.RegisterRoutes(engine)

	recorder := doRequest(engine, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, recorder.Body.String())

	// 管理接口必须登录
	recorder = doRequest(engine, http.MethodGet, "/api/admin/config", nil, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doRequest(engine, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "temple_http_request_duration_seconds")
}
