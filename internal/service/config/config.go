package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/errs"
	"github.com/robinlg/temple-platform/internal/repository"
)

// Service 站点配置服务
//
// 读路径不返回错误：存储不可用时记日志并使用默认值，保证前台页面可用。
// 写路径的错误原样返回给调用方。
//
//go:generate mockgen -source=./config.go -destination=./mocks/config.mock.go -package=configmocks Service
type Service interface {
	// Get 文档不存在或者读取失败时返回 nil
	Get(ctx context.Context, key domain.ConfigKey) domain.ConfigValue
	// Lookup 同 Get，但是区分不存在和不可用
	Lookup(ctx context.Context, key domain.ConfigKey) domain.ConfigLookup
	// Set 合并写，未出现的字段保持原值
	Set(ctx context.Context, key domain.ConfigKey, value domain.ConfigValue) error
	// GetAll 导出用，不读也不写缓存
	GetAll(ctx context.Context) (map[domain.ConfigKey]domain.ConfigValue, error)
	ClearCache(ctx context.Context) error
	ExportAll(ctx context.Context) ([]byte, error)
	// ImportAll 全部成功或者全部失败，完成后清空缓存
	ImportAll(ctx context.Context, snapshot []byte) error

	GetEmailConfig(ctx context.Context) domain.EmailConfig
	GetSiteSettings(ctx context.Context) domain.SiteSettings
	GetR2Config(ctx context.Context) domain.R2Config
	GetPaymentConfig(ctx context.Context) domain.PaymentConfig

	// InitializeDefaults 只写入当前不存在的文档，返回本次创建的 key
	InitializeDefaults(ctx context.Context) ([]domain.ConfigKey, error)
}

type service struct {
	repo   repository.ConfigRepository
	getenv func(string) string
	logger *elog.Component
}

// NewService 创建配置服务实例
func NewService(repo repository.ConfigRepository) Service {
	return &service{
		repo:   repo,
		getenv: os.Getenv,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Get(ctx context.Context, key domain.ConfigKey) domain.ConfigValue {
	res := s.Lookup(ctx, key)
	if !res.Found() {
		return nil
	}
	return res.Value
}

func (s *service) Lookup(ctx context.Context, key domain.ConfigKey) domain.ConfigLookup {
	entry, err := s.repo.GetByKey(ctx, key)
	switch {
	case err == nil:
		return domain.ConfigLookup{State: domain.LookupFound, Value: entry.Value}
	case errors.Is(err, errs.ErrConfigNotFound):
		return domain.ConfigLookup{State: domain.LookupNotFound}
	default:
		s.logger.Error("读取配置失败", elog.FieldErr(err), elog.String("key", key.String()))
		return domain.ConfigLookup{State: domain.LookupUnavailable, Err: err}
	}
}

func (s *service) Set(ctx context.Context, key domain.ConfigKey, value domain.ConfigValue) error {
	if !key.IsValid() {
		return fmt.Errorf("%w: 配置键不能为空", errs.ErrInvalidParameter)
	}
	return s.repo.Merge(ctx, key, value)
}

func (s *service) GetAll(ctx context.Context) (map[domain.ConfigKey]domain.ConfigValue, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.ConfigKey]domain.ConfigValue, len(entries))
	for _, e := range entries {
		res[e.Key] = e.Value
	}
	return res, nil
}

func (s *service) ClearCache(ctx context.Context) error {
	return s.repo.ClearCache(ctx)
}

func (s *service) ExportAll(ctx context.Context) ([]byte, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	// encoding/json 会按 key 排序，导出结果稳定
	return json.MarshalIndent(all, "", "  ")
}

func (s *service) ImportAll(ctx context.Context, snapshot []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(snapshot, &raw); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}
	values := make(map[domain.ConfigKey]domain.ConfigValue, len(raw))
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	// 先全部校验，任何一个不合法都不写入
	for _, k := range keys {
		key := domain.ConfigKey(k)
		if !key.IsValid() {
			return fmt.Errorf("%w: 配置键不能为空", errs.ErrInvalidSnapshot)
		}
		var value domain.ConfigValue
		if err := json.Unmarshal(raw[k], &value); err != nil || value == nil {
			return fmt.Errorf("%w: %s 不是对象", errs.ErrInvalidSnapshot, k)
		}
		values[key] = value
	}
	if err := s.repo.BatchMerge(ctx, values); err != nil {
		return err
	}
	s.logger.Info("导入配置完成", elog.Int("count", len(values)))
	return nil
}

func (s *service) GetEmailConfig(ctx context.Context) domain.EmailConfig {
	return decodeOnto(ctx, s, domain.ConfigKeyEmail, s.defaultEmailConfig())
}

func (s *service) GetSiteSettings(ctx context.Context) domain.SiteSettings {
	return decodeOnto(ctx, s, domain.ConfigKeySite, s.defaultSiteSettings())
}

func (s *service) GetR2Config(ctx context.Context) domain.R2Config {
	return decodeOnto(ctx, s, domain.ConfigKeyR2, s.defaultR2Config())
}

func (s *service) GetPaymentConfig(ctx context.Context) domain.PaymentConfig {
	return decodeOnto(ctx, s, domain.ConfigKeyPayment, s.defaultPaymentConfig())
}

// decodeOnto 文档存在时覆盖到 def 的副本上，解析失败整体退回 def
func decodeOnto[T any](ctx context.Context, s *service, key domain.ConfigKey, def T) T {
	res := s.Lookup(ctx, key)
	if !res.Found() {
		return def
	}
	merged := def
	if err := res.Value.Decode(&merged); err != nil {
		s.logger.Error("解析配置失败，使用默认值", elog.FieldErr(err), elog.String("key", key.String()))
		return def
	}
	return merged
}

func (s *service) InitializeDefaults(ctx context.Context) ([]domain.ConfigKey, error) {
	defaults := s.defaults()
	keys := make([]domain.ConfigKey, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	created := make([]domain.ConfigKey, 0, len(keys))
	for _, key := range keys {
		res := s.Lookup(ctx, key)
		switch res.State {
		case domain.LookupFound:
			continue
		case domain.LookupUnavailable:
			// 不确定文档是否存在的时候不能写，否则可能覆盖已有配置
			return created, res.Err
		}
		value, err := domain.ToConfigValue(defaults[key])
		if err != nil {
			return created, err
		}
		if err = s.Set(ctx, key, value); err != nil {
			return created, err
		}
		s.logger.Info("初始化默认配置", elog.String("key", key.String()))
		created = append(created, key)
	}
	return created, nil
}
