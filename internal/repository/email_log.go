package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/robinlg/temple-platform/internal/domain"
	idgen "github.com/robinlg/temple-platform/internal/pkg/id_generator"
	"github.com/robinlg/temple-platform/internal/repository/dao"
)

//go:generate mockgen -source=./email_log.go -destination=./mocks/email_log.mock.go -package=repomocks EmailLogRepository
type EmailLogRepository interface {
	// Create 记录一次发送，ID 为空时自动生成
	Create(ctx context.Context, log domain.EmailLog) (domain.EmailLog, error)
	FindRecent(ctx context.Context, offset, limit int) ([]domain.EmailLog, error)
}

type emailLogRepository struct {
	dao         dao.EmailLogDAO
	idGenerator *idgen.Generator
}

// NewEmailLogRepository 创建邮件记录仓库实例
func NewEmailLogRepository(d dao.EmailLogDAO) EmailLogRepository {
	return &emailLogRepository{
		dao:         d,
		idGenerator: idgen.NewGenerator(),
	}
}

func (r *emailLogRepository) Create(ctx context.Context, log domain.EmailLog) (domain.EmailLog, error) {
	if log.ID == 0 {
		log.ID = r.idGenerator.GenerateID(log.Type.String(), log.Recipient)
	}
	if log.Ctime == 0 {
		log.Ctime = time.Now().UnixMilli()
	}
	err := r.dao.Create(ctx, r.toEntity(log))
	return log, err
}

func (r *emailLogRepository) FindRecent(ctx context.Context, offset, limit int) ([]domain.EmailLog, error) {
	res, err := r.dao.FindRecent(ctx, offset, limit)
	return slice.Map(res, func(_ int, src dao.EmailLog) domain.EmailLog {
		return r.toDomain(src)
	}), err
}

func (r *emailLogRepository) toEntity(log domain.EmailLog) dao.EmailLog {
	return dao.EmailLog{
		ID:        log.ID,
		Type:      log.Type.String(),
		Recipient: log.Recipient,
		Subject:   log.Subject,
		Status:    log.Status.String(),
		Error:     log.Error,
		Ctime:     log.Ctime,
		Utime:     log.Ctime,
	}
}

func (r *emailLogRepository) toDomain(log dao.EmailLog) domain.EmailLog {
	return domain.EmailLog{
		ID:        log.ID,
		Type:      domain.EmailType(log.Type),
		Recipient: log.Recipient,
		Subject:   log.Subject,
		Status:    domain.EmailStatus(log.Status),
		Error:     log.Error,
		Ctime:     log.Ctime,
	}
}
