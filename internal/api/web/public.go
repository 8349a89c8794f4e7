package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	configsvc "github.com/robinlg/temple-platform/internal/service/config"
)

// PublicHandler 前台页面使用，不需要登录
type PublicHandler struct {
	configSvc configsvc.Service
}

func NewPublicHandler(configSvc configsvc.Service) *PublicHandler {
	return &PublicHandler{configSvc: configSvc}
}

func (h *PublicHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/api/site-settings", h.SiteSettings)
	r.GET("/health", h.HealthCheck)
}

// SiteSettings 读失败时返回默认值，页面总能渲染
func (h *PublicHandler) SiteSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.configSvc.GetSiteSettings(c.Request.Context()))
}

func (h *PublicHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
