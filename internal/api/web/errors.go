package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robinlg/temple-platform/internal/errs"
)

// statusOf 把业务错误映射为HTTP状态码
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidParameter),
		errors.Is(err, errs.ErrInvalidSnapshot),
		errors.Is(err, errs.ErrRecipientMissing):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrConfigNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrEmailDisabled),
		errors.Is(err, errs.ErrEmailAPIKeyMissing),
		errors.Is(err, errs.ErrStorageNotConfigured):
		return http.StatusPreconditionFailed
	case errors.Is(err, errs.ErrConfigUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrSendEmailFailed),
		errors.Is(err, errs.ErrExternalServiceError):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// abort 错误信息原样返回给管理后台
func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
}
