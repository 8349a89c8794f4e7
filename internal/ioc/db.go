package ioc

import (
	"github.com/ego-component/egorm"
	"github.com/robinlg/temple-platform/internal/repository/dao"
)

func InitDB() *egorm.Component {
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic("建表失败:" + err.Error())
	}
	return db
}
