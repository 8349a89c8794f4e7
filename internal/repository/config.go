package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/errs"
	"github.com/robinlg/temple-platform/internal/repository/cache"
	"github.com/robinlg/temple-platform/internal/repository/dao"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "temple",
	Subsystem: "config",
	Name:      "cache_lookups_total",
	Help:      "本地配置缓存命中情况",
}, []string{"result"})

type ConfigRepository interface {
	// GetByKey 先查本地缓存，过期或者没有再回源
	// 不存在返回 errs.ErrConfigNotFound，存储出错返回 errs.ErrConfigUnavailable
	GetByKey(ctx context.Context, key domain.ConfigKey) (domain.ConfigEntry, error)
	// Merge 合并写并让本地缓存失效
	Merge(ctx context.Context, key domain.ConfigKey, value domain.ConfigValue) error
	// FindAll 直接查存储，不走缓存
	FindAll(ctx context.Context) ([]domain.ConfigEntry, error)
	// BatchMerge 事务内合并写全部文档，然后清空缓存
	BatchMerge(ctx context.Context, values map[domain.ConfigKey]domain.ConfigValue) error
	ClearCache(ctx context.Context) error
	// Invalidate 丢弃单个 key 的本地缓存，用于响应其他实例的变更
	Invalidate(ctx context.Context, key domain.ConfigKey) error
}

type configRepository struct {
	dao         dao.ConfigDAO
	localCache  cache.ConfigCache
	invalidator cache.Invalidator
	logger      *elog.Component
	now         func() time.Time

	group singleflight.Group
	// 每次写都会自增，回源前后版本不一致说明期间有写入，结果不能进缓存
	mu          sync.Mutex
	generations map[domain.ConfigKey]uint64
}

// NewConfigRepository 创建配置仓库实例
func NewConfigRepository(
	configDao dao.ConfigDAO,
	localCache cache.ConfigCache,
	invalidator cache.Invalidator,
) ConfigRepository {
	return newConfigRepository(configDao, localCache, invalidator, time.Now)
}

func newConfigRepository(
	configDao dao.ConfigDAO,
	localCache cache.ConfigCache,
	invalidator cache.Invalidator,
	now func() time.Time,
) *configRepository {
	return &configRepository{
		dao:         configDao,
		localCache:  localCache,
		invalidator: invalidator,
		logger:      elog.DefaultLogger,
		now:         now,
		generations: make(map[domain.ConfigKey]uint64),
	}
}

func (r *configRepository) GetByKey(ctx context.Context, key domain.ConfigKey) (domain.ConfigEntry, error) {
	entry, err := r.localCache.Get(ctx, key)
	if err == nil {
		cacheLookups.WithLabelValues("hit").Inc()
		return entry, nil
	}
	cacheLookups.WithLabelValues("miss").Inc()

	// 同一个 key 并发未命中时只回源一次
	val, err, _ := r.group.Do(key.String(), func() (any, error) {
		return r.load(ctx, key)
	})
	if err != nil {
		return domain.ConfigEntry{}, err
	}
	res := val.(domain.ConfigEntry)
	res.Value = res.Value.Clone()
	return res, nil
}

func (r *configRepository) load(ctx context.Context, key domain.ConfigKey) (domain.ConfigEntry, error) {
	gen := r.generation(key)
	c, err := r.dao.GetByKey(ctx, key.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 不存在的结果不缓存，下次还会回源
			return domain.ConfigEntry{}, fmt.Errorf("%w: %s", errs.ErrConfigNotFound, key)
		}
		return domain.ConfigEntry{}, fmt.Errorf("%w: %w", errs.ErrConfigUnavailable, err)
	}
	entry := r.toDomain(c)
	if gen != r.generation(key) {
		return entry, nil
	}
	if lerr := r.localCache.Set(ctx, entry); lerr != nil {
		r.logger.Error("刷新本地缓存失败", elog.FieldErr(lerr), elog.String("key", key.String()))
	}
	return entry, nil
}

func (r *configRepository) Merge(ctx context.Context, key domain.ConfigKey, value domain.ConfigValue) error {
	now := r.now().UnixMilli()
	update := value.Clone()
	if update == nil {
		update = domain.ConfigValue{}
	}
	update[domain.UpdatedAtField] = now
	r.bump(key)
	_, err := r.dao.Merge(ctx, key.String(), update, now)
	// 不管写没写成功都让缓存失效，失败时存储里可能已经是新值
	r.invalidate(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: 写入配置 %s 失败 %w", errs.ErrDatabaseError, key, err)
	}
	return nil
}

func (r *configRepository) FindAll(ctx context.Context) ([]domain.ConfigEntry, error) {
	res, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDatabaseError, err)
	}
	return slice.Map(res, func(_ int, src dao.SiteConfig) domain.ConfigEntry {
		return r.toDomain(src)
	}), nil
}

func (r *configRepository) BatchMerge(ctx context.Context, values map[domain.ConfigKey]domain.ConfigValue) error {
	now := r.now().UnixMilli()
	updates := make(map[string]domain.ConfigValue, len(values))
	for key, value := range values {
		update := value.Clone()
		if update == nil {
			update = domain.ConfigValue{}
		}
		update[domain.UpdatedAtField] = now
		updates[key.String()] = update
		r.bump(key)
	}
	err := r.dao.BatchMerge(ctx, updates, now)
	if cerr := r.ClearCache(ctx); cerr != nil {
		r.logger.Error("清空本地缓存失败", elog.FieldErr(cerr))
	}
	for key := range values {
		r.publish(ctx, key)
	}
	if err != nil {
		return fmt.Errorf("%w: 批量写入配置失败 %w", errs.ErrDatabaseError, err)
	}
	return nil
}

func (r *configRepository) ClearCache(ctx context.Context) error {
	r.mu.Lock()
	for key := range r.generations {
		r.generations[key]++
	}
	r.mu.Unlock()
	return r.localCache.Clear(ctx)
}

func (r *configRepository) Invalidate(ctx context.Context, key domain.ConfigKey) error {
	r.bump(key)
	return r.localCache.Del(ctx, key)
}

func (r *configRepository) invalidate(ctx context.Context, key domain.ConfigKey) {
	// 正在进行的回源可能拿到旧值，不让后来的调用继续复用它
	r.bump(key)
	r.group.Forget(key.String())
	if err := r.localCache.Del(ctx, key); err != nil {
		r.logger.Error("删除本地缓存失败", elog.FieldErr(err), elog.String("key", key.String()))
	}
	r.publish(ctx, key)
}

func (r *configRepository) publish(ctx context.Context, key domain.ConfigKey) {
	if err := r.invalidator.Publish(ctx, key); err != nil {
		r.logger.Error("广播缓存失效失败", elog.FieldErr(err), elog.String("key", key.String()))
	}
}

func (r *configRepository) generation(key domain.ConfigKey) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generations[key]
}

func (r *configRepository) bump(key domain.ConfigKey) {
	r.mu.Lock()
	r.generations[key]++
	r.mu.Unlock()
}

func (r *configRepository) toDomain(c dao.SiteConfig) domain.ConfigEntry {
	entry := domain.ConfigEntry{
		Key:   domain.ConfigKey(c.Key),
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
	if c.Value.Valid {
		entry.Value = c.Value.Val
	}
	if entry.Value == nil {
		entry.Value = domain.ConfigValue{}
	}
	return entry
}
