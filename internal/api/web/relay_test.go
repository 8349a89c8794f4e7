//go:build unit

package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/errs"
	providermocks "github.com/robinlg/temple-platform/internal/service/email/provider/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRelayHandler_SendEmail(t *testing.T) {
	t.Parallel()

	validBody := `{"apiKey":"re_1","from":"SLPPV Temple <noreply@slppvtempletpt.org>","to":"a@example.com","subject":"Test Email - SLPPV Temple","html":"<p>hi</p>"}`

	testCases := []struct {
		name     string
		method   string
		body     string
		mock     func(p *providermocks.MockProvider)
		wantCode int
		wantBody map[string]any
	}{
		{
			name:     "方法不允许",
			method:   http.MethodGet,
			mock:     func(p *providermocks.MockProvider) {},
			wantCode: http.StatusMethodNotAllowed,
			wantBody: map[string]any{"error": "Method not allowed"},
		},
		{
			name:     "缺少字段",
			method:   http.MethodPost,
			body:     `{"apiKey":"re_1","to":"a@example.com"}`,
			mock:     func(p *providermocks.MockProvider) {},
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"error": "Missing required fields"},
		},
		{
			name:     "请求体不是JSON",
			method:   http.MethodPost,
			body:     `oops`,
			mock:     func(p *providermocks.MockProvider) {},
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"error": "Missing required fields"},
		},
		{
			name:   "供应商失败",
			method: http.MethodPost,
			body:   validBody,
			mock: func(p *providermocks.MockProvider) {
				p.EXPECT().Send(gomock.Any(), "re_1", gomock.Any()).
					Return(nil, errs.ErrSendEmailFailed)
			},
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]any{
				"success": false,
				"error":   "Failed to send email",
				"details": "send email failed",
			},
		},
		{
			name:   "发送成功",
			method: http.MethodPost,
			body:   validBody,
			mock: func(p *providermocks.MockProvider) {
				p.EXPECT().Send(gomock.Any(), "re_1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, msg domain.EmailMessage) (map[string]any, error) {
						assert.Equal(t, "a@example.com", msg.To)
						assert.Equal(t, "Test Email - SLPPV Temple", msg.Subject)
						return map[string]any{"id": "em_1"}, nil
					})
			},
			wantCode: http.StatusOK,
			wantBody: map[string]any{
				"success": true,
				"data":    map[string]any{"id": "em_1"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p := providermocks.NewMockProvider(ctrl)
			tc.mock(p)

			r := gin.New()
			NewRelayHandler(p).RegisterRoutes(r)

			req := httptest.NewRequest(tc.method, "/api/send-email", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			r.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantCode, recorder.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tc.wantBody, body)
		})
	}
}
