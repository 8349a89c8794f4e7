package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/errs"
	configsvc "github.com/robinlg/temple-platform/internal/service/config"
)

// Object 上传结果
type Object struct {
	Key  string
	URL  string
	Size int64
}

// Service 对象存储，兼容 R2/S3
//
//go:generate mockgen -source=./storage.go -destination=./mocks/storage.mock.go -package=storagemocks Service
type Service interface {
	Upload(ctx context.Context, folder, filename string, r io.Reader, size int64, contentType string) (Object, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	configSvc configsvc.Service
	// newClient 便于测试替换
	newClient func(cfg domain.R2Config) (*minio.Client, error)
	now       func() time.Time
	logger    *elog.Component
}

// NewService 每次操作都重新读取配置，后台修改配置后立即生效
func NewService(configSvc configsvc.Service) Service {
	return &service{
		configSvc: configSvc,
		newClient: newMinioClient,
		now:       time.Now,
		logger:    elog.DefaultLogger,
	}
}

func newMinioClient(cfg domain.R2Config) (*minio.Client, error) {
	return minio.New(cfg.ResolvedEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: true,
		Region: "auto",
	})
}

func (s *service) Upload(ctx context.Context, folder, filename string, r io.Reader, size int64, contentType string) (Object, error) {
	cfg, client, err := s.client(ctx)
	if err != nil {
		return Object{}, err
	}
	key := s.objectKey(folder, filename)
	info, err := client.PutObject(ctx, cfg.BucketName, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return Object{}, fmt.Errorf("%w: 上传对象失败 %w", errs.ErrExternalServiceError, err)
	}
	s.logger.Info("上传对象成功", elog.String("key", key), elog.Int64("size", info.Size))
	return Object{
		Key:  key,
		URL:  PublicURL(cfg.PublicURL, key),
		Size: info.Size,
	}, nil
}

func (s *service) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return fmt.Errorf("%w: 对象键不能为空", errs.ErrInvalidParameter)
	}
	cfg, client, err := s.client(ctx)
	if err != nil {
		return err
	}
	if err = client.RemoveObject(ctx, cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: 删除对象失败 %w", errs.ErrExternalServiceError, err)
	}
	return nil
}

func (s *service) client(ctx context.Context) (domain.R2Config, *minio.Client, error) {
	cfg := s.configSvc.GetR2Config(ctx)
	if !cfg.IsComplete() {
		return cfg, nil, errs.ErrStorageNotConfigured
	}
	c, err := s.newClient(cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("%w: %w", errs.ErrExternalServiceError, err)
	}
	return cfg, c, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// objectKey 形如 gallery/1760851200000-<uuid>-photo.jpg
func (s *service) objectKey(folder, filename string) string {
	name := unsafeChars.ReplaceAllString(path.Base(filename), "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "file"
	}
	base := fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), uuid.NewString(), strings.ToLower(name))
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return base
	}
	return folder + "/" + base
}

// PublicURL 拼接公开访问地址
func PublicURL(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(key, "/")
}
