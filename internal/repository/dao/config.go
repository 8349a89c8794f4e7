package dao

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/robinlg/temple-platform/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const mysqlDuplicateEntry = 1062

// SiteConfig 配置文档表，一个 key 对应一份文档
type SiteConfig struct {
	Key   string                              `gorm:"column:config_key;primaryKey;type:VARCHAR(128);comment:'配置键，如 email_config'"`
	Value sqlx.JsonColumn[domain.ConfigValue] `gorm:"type:JSON;comment:'配置内容，字段约定俗成'"`
	Ctime int64
	Utime int64
}

// TableName 重命名表
func (SiteConfig) TableName() string {
	return "site_configs"
}

//go:generate mockgen -source=./config.go -destination=./mocks/config.mock.go -package=daomocks ConfigDAO
type ConfigDAO interface {
	GetByKey(ctx context.Context, key string) (SiteConfig, error)
	FindAll(ctx context.Context) ([]SiteConfig, error)
	// Merge 合并写，不存在就创建，返回合并后的文档
	Merge(ctx context.Context, key string, value domain.ConfigValue, now int64) (SiteConfig, error)
	// BatchMerge 在同一个事务里合并写多份文档，要么全部成功，要么全部回滚
	BatchMerge(ctx context.Context, values map[string]domain.ConfigValue, now int64) error
}

type configDAO struct {
	db *egorm.Component
}

// NewConfigDAO 创建配置 DAO 实例
func NewConfigDAO(db *egorm.Component) ConfigDAO {
	return &configDAO{
		db: db,
	}
}

func (d *configDAO) GetByKey(ctx context.Context, key string) (SiteConfig, error) {
	var res SiteConfig
	err := d.db.WithContext(ctx).Where("config_key = ?", key).First(&res).Error
	return res, err
}

func (d *configDAO) FindAll(ctx context.Context) ([]SiteConfig, error) {
	var res []SiteConfig
	err := d.db.WithContext(ctx).Order("config_key").Find(&res).Error
	return res, err
}

func (d *configDAO) Merge(ctx context.Context, key string, value domain.ConfigValue, now int64) (SiteConfig, error) {
	var res SiteConfig
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = d.merge(tx, key, value, now)
		return err
	})
	return res, err
}

func (d *configDAO) BatchMerge(ctx context.Context, values map[string]domain.ConfigValue, now int64) error {
	if len(values) == 0 {
		return nil
	}
	// 固定加锁顺序，两个批量写不会互相死锁
	keys := slices.Sorted(maps.Keys(values))
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, key := range keys {
			if _, err := d.merge(tx, key, values[key], now); err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *configDAO) merge(tx *gorm.DB, key string, value domain.ConfigValue, now int64) (SiteConfig, error) {
	var existing SiteConfig
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("config_key = ?", key).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		created := SiteConfig{
			Key:   key,
			Value: sqlx.JsonColumn[domain.ConfigValue]{Val: value.Clone(), Valid: true},
			Ctime: now,
			Utime: now,
		}
		err = tx.Create(&created).Error
		if err == nil {
			return created, nil
		}
		// 并发创建，别人先插入了，按更新处理
		var me *mysql.MySQLError
		if !errors.As(err, &me) || me.Number != mysqlDuplicateEntry {
			return SiteConfig{}, err
		}
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("config_key = ?", key).First(&existing).Error
		if err != nil {
			return SiteConfig{}, err
		}
	case err != nil:
		return SiteConfig{}, err
	}

	merged := existing.Value.Val.Merge(value)
	col := sqlx.JsonColumn[domain.ConfigValue]{Val: merged, Valid: true}
	err = tx.Model(&SiteConfig{}).Where("config_key = ?", key).
		Updates(map[string]any{
			"value": col,
			"utime": now,
		}).Error
	if err != nil {
		return SiteConfig{}, err
	}
	existing.Value = col
	existing.Utime = now
	return existing, nil
}
