//go:build unit

package dao

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	selectForUpdate = "SELECT \\* FROM `site_configs` WHERE config_key = \\? .*FOR UPDATE"
	insertConfig    = "INSERT INTO `site_configs`"
	updateConfig    = "UPDATE `site_configs` SET"
)

var configColumns = []string{"config_key", "value", "ctime", "utime"}

func newMockDAO(t *testing.T) (*configDAO, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	return &configDAO{db: db}, mock
}

func TestConfigDAO_Merge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		want    domain.ConfigValue
	}{
		{
			name: "合并已有文档",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns).
					AddRow("email_config", []byte(`{"enabled":false,"senderName":"SLPPV Temple"}`), 1, 1))
				mock.ExpectExec(updateConfig).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			want: domain.ConfigValue{"enabled": true, "senderName": "SLPPV Temple"},
		},
		{
			name: "不存在时创建",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns))
				mock.ExpectExec(insertConfig).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			want: domain.ConfigValue{"enabled": true},
		},
		{
			name: "并发创建时按更新处理",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns))
				mock.ExpectExec(insertConfig).
					WillReturnError(&mysql.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry 'email_config'"})
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns).
					AddRow("email_config", []byte(`{"senderName":"Temple Office"}`), 1, 1))
				mock.ExpectExec(updateConfig).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			want: domain.ConfigValue{"enabled": true, "senderName": "Temple Office"},
		},
		{
			name: "插入失败回滚",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns))
				mock.ExpectExec(insertConfig).WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, mock := newMockDAO(t)
			tc.mock(mock)

			res, err := d.Merge(t.Context(), "email_config", domain.ConfigValue{"enabled": true}, 1760851200000)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.Value.Val)
				assert.Equal(t, int64(1760851200000), res.Utime)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConfigDAO_BatchMerge(t *testing.T) {
	t.Parallel()

	values := map[string]domain.ConfigValue{
		"site_settings": {"templeName": "new"},
		"email_config":  {"enabled": true},
	}

	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "全部成功提交",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				// 按 key 排序依次加锁
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns).
					AddRow("email_config", []byte(`{"enabled":false}`), 1, 1))
				mock.ExpectExec(updateConfig).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns))
				mock.ExpectExec(insertConfig).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "第二个文档失败整体回滚",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns).
					AddRow("email_config", []byte(`{"enabled":false}`), 1, 1))
				mock.ExpectExec(updateConfig).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(selectForUpdate).WillReturnError(errors.New("lock wait timeout"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "第二个文档并发创建",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns).
					AddRow("email_config", []byte(`{"enabled":false}`), 1, 1))
				mock.ExpectExec(updateConfig).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns))
				mock.ExpectExec(insertConfig).
					WillReturnError(&mysql.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry 'site_settings'"})
				mock.ExpectQuery(selectForUpdate).WillReturnRows(sqlmock.NewRows(configColumns).
					AddRow("site_settings", []byte(`{"templeName":"old"}`), 1, 1))
				mock.ExpectExec(updateConfig).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, mock := newMockDAO(t)
			tc.mock(mock)

			err := d.BatchMerge(t.Context(), values, 1760851200000)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
