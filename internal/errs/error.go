package errs

import "errors"

// 定义统一的错误类型
var (
	// 业务错误
	ErrInvalidParameter = errors.New("参数错误")

	// 配置相关
	ErrConfigNotFound    = errors.New("配置不存在")
	ErrConfigUnavailable = errors.New("配置存储不可用")
	ErrInvalidSnapshot   = errors.New("配置快照格式错误")

	// 邮件相关，提示语会直接展示在后台，所以用英文原文
	ErrEmailDisabled      = errors.New("email service is disabled in configuration")
	ErrEmailAPIKeyMissing = errors.New("email API key is not configured")
	ErrRecipientMissing   = errors.New("recipient email address is missing")
	ErrSendEmailFailed    = errors.New("send email failed")

	// 对象存储
	ErrStorageNotConfigured = errors.New("object storage is not configured")

	// 系统错误
	ErrDatabaseError        = errors.New("数据库错误")
	ErrExternalServiceError = errors.New("外部服务调用错误")
)
