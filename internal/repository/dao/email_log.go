package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

// EmailLog 邮件发送记录表
type EmailLog struct {
	ID        int64  `gorm:"primaryKey;comment:'雪花算法ID'"`
	Type      string `gorm:"type:ENUM('test','receipt','thankYou');NOT NULL;index:idx_type_ctime,priority:1;comment:'邮件类型'"`
	Recipient string `gorm:"type:VARCHAR(256);NOT NULL;index:idx_recipient;comment:'收件人'"`
	Subject   string `gorm:"type:VARCHAR(512);NOT NULL;comment:'邮件主题'"`
	Status    string `gorm:"type:ENUM('SUCCEEDED','FAILED');NOT NULL;comment:'发送状态'"`
	Error     string `gorm:"type:TEXT;comment:'失败原因'"`
	Ctime     int64  `gorm:"index:idx_type_ctime,priority:2"`
	Utime     int64
}

// TableName 重命名表
func (EmailLog) TableName() string {
	return "email_logs"
}

var ErrDuplicateEmailLog = errors.New("邮件记录ID重复")

//go:generate mockgen -source=./email_log.go -destination=./mocks/email_log.mock.go -package=daomocks EmailLogDAO
type EmailLogDAO interface {
	Create(ctx context.Context, log EmailLog) error
	// FindRecent 按时间倒序分页
	FindRecent(ctx context.Context, offset, limit int) ([]EmailLog, error)
}

type emailLogDAO struct {
	db *egorm.Component
}

// NewEmailLogDAO 创建邮件记录 DAO 实例
func NewEmailLogDAO(db *egorm.Component) EmailLogDAO {
	return &emailLogDAO{
		db: db,
	}
}

func (d *emailLogDAO) Create(ctx context.Context, log EmailLog) error {
	err := d.db.WithContext(ctx).Create(&log).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%w: %d", ErrDuplicateEmailLog, log.ID)
	}
	return err
}

func (d *emailLogDAO) FindRecent(ctx context.Context, offset, limit int) ([]EmailLog, error) {
	var res []EmailLog
	err := d.db.WithContext(ctx).Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}
