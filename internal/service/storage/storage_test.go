//go:build unit

package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/errs"
	configmocks "github.com/robinlg/temple-platform/internal/service/config/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublicURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "普通拼接", prefix: "https://cdn.example.org", key: "gallery/a.jpg", want: "https://cdn.example.org/gallery/a.jpg"},
		{name: "多余的斜杠", prefix: "https://cdn.example.org/", key: "/gallery/a.jpg", want: "https://cdn.example.org/gallery/a.jpg"},
		{name: "没有前缀", prefix: "", key: "gallery/a.jpg", want: "gallery/a.jpg"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, PublicURL(tc.prefix, tc.key))
		})
	}
}

func TestService_objectKey(t *testing.T) {
	t.Parallel()

	s := &service{now: func() time.Time { return time.UnixMilli(1760851200000) }}

	key := s.objectKey("/gallery/", "../Brahmotsavam 2026 (Day 1).JPG")
	assert.True(t, strings.HasPrefix(key, "gallery/1760851200000-"), key)
	assert.True(t, strings.HasSuffix(key, "-brahmotsavam-2026-day-1-.jpg"), key)
	assert.NotContains(t, key, "..")

	key = s.objectKey("", "///")
	assert.True(t, strings.HasSuffix(key, "-file"), key)
	assert.NotContains(t, key, "/")
}

func TestService_NotConfigured(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	configSvc := configmocks.NewMockService(ctrl)
	configSvc.EXPECT().GetR2Config(gomock.Any()).Return(domain.R2Config{BucketName: "gallery"}).Times(2)

	svc := NewService(configSvc)
	_, err := svc.Upload(t.Context(), "gallery", "a.jpg", strings.NewReader("x"), 1, "image/jpeg")
	assert.ErrorIs(t, err, errs.ErrStorageNotConfigured)

	err = svc.Delete(t.Context(), "gallery/a.jpg")
	assert.ErrorIs(t, err, errs.ErrStorageNotConfigured)
}
