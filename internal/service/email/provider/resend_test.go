//go:build unit

package provider

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gotomicro/ego/client/ehttp"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendProvider_Send(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		status     int
		body       string
		want       map[string]any
		assertFunc assert.ErrorAssertionFunc
	}{
		{
			name:       "发送成功",
			status:     http.StatusOK,
			body:       `{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`,
			want:       map[string]any{"id": "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"},
			assertFunc: assert.NoError,
		},
		{
			name:   "密钥无效",
			status: http.StatusUnauthorized,
			body:   `{"statusCode":401,"name":"validation_error","message":"API key is invalid"}`,
			assertFunc: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrSendEmailFailed, msgAndArgs...) &&
					assert.ErrorContains(t, err, "API key is invalid", msgAndArgs...)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, resendEmailsPath, r.URL.Path)
				assert.Equal(t, "Bearer re_key", r.Header.Get("Authorization"))
				var req resendReq
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, []string{"x@example.com"}, req.To)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			p := NewResendProvider(ehttp.DefaultContainer().Build(ehttp.WithAddr(srv.URL)))
			got, err := p.Send(t.Context(), "re_key", domain.EmailMessage{
				From:    "SLPPV Temple <noreply@slppvtempletpt.org>",
				To:      "x@example.com",
				Subject: "hi",
				HTML:    "<p>hi</p>",
			})
			tc.assertFunc(t, err)
			if err != nil {
				return
			}
			require.Equal(t, tc.want, got)
		})
	}
}
