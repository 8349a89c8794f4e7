package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/service/email/provider"
	"github.com/robinlg/temple-platform/internal/service/email/relay"
)

// RelayHandler 邮件中继，密钥由调用方随请求携带
type RelayHandler struct {
	provider provider.Provider
	logger   *elog.Component
}

func NewRelayHandler(p provider.Provider) *RelayHandler {
	return &RelayHandler{
		provider: p,
		logger:   elog.DefaultLogger,
	}
}

// RegisterRoutes 所有方法都注册，非 POST 由 handler 返回 405
func (h *RelayHandler) RegisterRoutes(r gin.IRoutes, middlewares ...gin.HandlerFunc) {
	handlers := append(middlewares, h.SendEmail)
	r.Any(relay.Path, handlers...)
}

func (h *RelayHandler) SendEmail(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var req relay.Request
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.APIKey == "" || req.From == "" || req.To == "" || req.Subject == "" || req.HTML == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	data, err := h.provider.Send(c.Request.Context(), req.APIKey, domain.EmailMessage{
		From:    req.From,
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
	})
	if err != nil {
		h.logger.Error("中继发送邮件失败", elog.String("to", req.To), elog.FieldErr(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, relay.Response{
			Success: false,
			Error:   relay.DefaultErrorMessage,
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, relay.Response{Success: true, Data: data})
}
