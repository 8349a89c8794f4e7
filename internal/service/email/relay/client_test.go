//go:build unit

package relay

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gotomicro/ego/client/ehttp"
	"github.com/robinlg/temple-platform/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		status     int
		body       string
		wantResp   Response
		assertFunc assert.ErrorAssertionFunc
		wantMsg    string
	}{
		{
			name:       "发送成功",
			status:     http.StatusOK,
			body:       `{"success":true,"data":{"id":"re_123"}}`,
			wantResp:   Response{Success: true, Data: map[string]any{"id": "re_123"}},
			assertFunc: assert.NoError,
		},
		{
			name:   "中继返回错误信息",
			status: http.StatusInternalServerError,
			body:   `{"success":false,"error":"domain not verified","details":"403"}`,
			assertFunc: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrSendEmailFailed, msgAndArgs...)
			},
			wantMsg: "domain not verified",
		},
		{
			name:   "中继没有错误信息",
			status: http.StatusBadGateway,
			body:   `{}`,
			assertFunc: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrSendEmailFailed, msgAndArgs...)
			},
			wantMsg: DefaultErrorMessage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got Request
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, Path, r.URL.Path)
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(ehttp.DefaultContainer().Build(ehttp.WithAddr(srv.URL)))
			req := Request{
				APIKey:  "re_key",
				From:    "SLPPV Temple <noreply@slppvtempletpt.org>",
				To:      "x@example.com",
				Subject: "Test Email - SLPPV Temple",
				HTML:    "<p>hi</p>",
			}
			resp, err := c.Send(t.Context(), req)
			tc.assertFunc(t, err)
			require.Equal(t, req, got)
			if err != nil {
				assert.Contains(t, err.Error(), tc.wantMsg)
				return
			}
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}
