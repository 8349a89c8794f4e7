package web

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/errs"
	"github.com/robinlg/temple-platform/internal/repository"
	configsvc "github.com/robinlg/temple-platform/internal/service/config"
	emailsvc "github.com/robinlg/temple-platform/internal/service/email"
	"github.com/robinlg/temple-platform/internal/service/storage"
)

const (
	defaultGalleryFolder = "gallery"
	maxUploadSize        = 10 << 20
	defaultLogPageSize   = 20
	maxLogPageSize       = 100
)

// AdminHandler 管理后台接口
type AdminHandler struct {
	configSvc  configsvc.Service
	emailSvc   emailsvc.Service
	storageSvc storage.Service
	emailLogs  repository.EmailLogRepository
}

func NewAdminHandler(
	configSvc configsvc.Service,
	emailSvc emailsvc.Service,
	storageSvc storage.Service,
	emailLogs repository.EmailLogRepository,
) *AdminHandler {
	return &AdminHandler{
		configSvc:  configSvc,
		emailSvc:   emailSvc,
		storageSvc: storageSvc,
		emailLogs:  emailLogs,
	}
}

func (h *AdminHandler) RegisterRoutes(g *gin.RouterGroup) {
	cg := g.Group("/config")
	cg.GET("", h.ListConfig)
	cg.GET("/export", h.ExportConfig)
	cg.POST("/import", h.ImportConfig)
	cg.POST("/cache/clear", h.ClearCache)
	cg.POST("/init", h.InitializeDefaults)
	cg.GET("/:key", h.GetConfig)
	cg.PUT("/:key", h.SetConfig)

	eg := g.Group("/email")
	eg.POST("/test", h.SendTestEmail)
	eg.POST("/donation", h.SendDonationEmails)
	eg.GET("/logs", h.ListEmailLogs)

	gg := g.Group("/gallery")
	gg.POST("/upload", h.Upload)
	gg.DELETE("/*key", h.DeleteObject)
}

func (h *AdminHandler) GetConfig(c *gin.Context) {
	key := domain.ConfigKey(c.Param("key"))
	res := h.configSvc.Lookup(c.Request.Context(), key)
	switch res.State {
	case domain.LookupFound:
		c.JSON(http.StatusOK, gin.H{"key": key, "value": res.Value})
	case domain.LookupNotFound:
		abort(c, errs.ErrConfigNotFound)
	default:
		abort(c, res.Err)
	}
}

func (h *AdminHandler) SetConfig(c *gin.Context) {
	var value domain.ConfigValue
	if err := c.ShouldBindJSON(&value); err != nil || value == nil {
		abort(c, errs.ErrInvalidParameter)
		return
	}
	key := domain.ConfigKey(c.Param("key"))
	if err := h.configSvc.Set(c.Request.Context(), key, value); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) ListConfig(c *gin.Context) {
	all, err := h.configSvc.GetAll(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *AdminHandler) ExportConfig(c *gin.Context) {
	data, err := h.configSvc.ExportAll(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}
	filename := "site-config-" + time.Now().Format("20060102") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *AdminHandler) ImportConfig(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abort(c, errs.ErrInvalidSnapshot)
		return
	}
	if err = h.configSvc.ImportAll(c.Request.Context(), data); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) ClearCache(c *gin.Context) {
	if err := h.configSvc.ClearCache(c.Request.Context()); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) InitializeDefaults(c *gin.Context) {
	created, err := h.configSvc.InitializeDefaults(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

type testEmailReq struct {
	To string `json:"to" binding:"required"`
}

func (h *AdminHandler) SendTestEmail(c *gin.Context) {
	var req testEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, errs.ErrRecipientMissing)
		return
	}
	res, err := h.emailSvc.SendTestEmail(c.Request.Context(), req.To)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": res.Success, "data": res.Data})
}

type donationReq struct {
	ID            string    `json:"id" binding:"required"`
	DonorName     string    `json:"donorName"`
	DonorEmail    string    `json:"donorEmail"`
	Amount        float64   `json:"amount"`
	Purpose       string    `json:"purpose"`
	ReceiptNumber string    `json:"receiptNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

type donationEmailErr struct {
	Type  domain.EmailType `json:"type"`
	Error string           `json:"error"`
}

func (h *AdminHandler) SendDonationEmails(c *gin.Context) {
	var req donationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, errs.ErrInvalidParameter)
		return
	}
	res := h.emailSvc.SendDonationEmails(c.Request.Context(), domain.Donation{
		ID:            req.ID,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		Amount:        req.Amount,
		Purpose:       req.Purpose,
		ReceiptNumber: req.ReceiptNumber,
		CreatedAt:     req.CreatedAt,
	})
	errList := make([]donationEmailErr, 0, len(res.Errors))
	for _, e := range res.Errors {
		errList = append(errList, donationEmailErr{Type: e.Type, Error: e.Err.Error()})
	}
	// 部分失败也返回 200，由调用方根据 errors 判断
	c.JSON(http.StatusOK, gin.H{
		"receipt":  res.Receipt,
		"thankYou": res.ThankYou,
		"errors":   errList,
	})
}

func (h *AdminHandler) ListEmailLogs(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLogPageSize)))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxLogPageSize {
		limit = defaultLogPageSize
	}
	logs, err := h.emailLogs.FindRecent(c.Request.Context(), offset, limit)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *AdminHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		abort(c, errs.ErrInvalidParameter)
		return
	}
	if fh.Size > maxUploadSize {
		abort(c, errs.ErrInvalidParameter)
		return
	}
	f, err := fh.Open()
	if err != nil {
		abort(c, err)
		return
	}
	defer f.Close()

	folder := c.DefaultPostForm("folder", defaultGalleryFolder)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	obj, err := h.storageSvc.Upload(c.Request.Context(), folder, fh.Filename, f, fh.Size, contentType)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": obj.Key, "url": obj.URL, "size": obj.Size})
}

func (h *AdminHandler) DeleteObject(c *gin.Context) {
	if err := h.storageSvc.Delete(c.Request.Context(), c.Param("key")); err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
