// 下载内容的持久化缓存
// sqlite为默认实现（单文件，无需额外服务），postgres通过xorm实现
package dbstorage

import (
	"errors"
	"fmt"

	"github.com/andrewyi/pyparser/src/dbstorage/schema"
)

var (
	ErrDataNotExist = errors.New("data not exist")
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

var (
	_ DBStorage = (*SimpleDBStorage)(nil)
	_ DBStorage = (*SQLiteDBStorage)(nil)
)

type DBStorage interface {
	// 不存在时返回ErrDataNotExist
	GetResponse(url string) (*schema.Response, error)
	SaveResponse(resp *schema.Response) error
	Clear() error
	Close() error
}

// dbURL为sqlite文件路径，或postgres连接串
// driver为none时返回nil，表示不使用缓存
func NewDBStorage(driver string, dbURL string) (DBStorage, error) {
	var (
		s   DBStorage
		err error
	)
	switch driver {
	case DriverSQLite:
		s, err = NewSQLiteDBStorage(dbURL)
	case DriverPostgres:
		s, err = NewSimpleDBStorage(dbURL)
	case DriverNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", driver)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
