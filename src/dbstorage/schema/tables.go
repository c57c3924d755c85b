// 缓存表，一个url对应一条记录，重复抓取时覆盖
package schema

import (
	"time"
)

type Response struct {
	ID         uint64    `xorm:"bigint pk autoincr 'id'"`
	URL        string    `xorm:"varchar(2048) notnull unique(uk_url) 'url'"`
	StatusCode int       `xorm:"int 'status_code'"`
	Content    []byte    `xorm:"bytea 'content'"`
	FetchedAt  time.Time `xorm:"datetime 'fetched_at'"`
	CreatedAt  time.Time `xorm:"created notnull 'created_at'"`
	UpdatedAt  time.Time `xorm:"updated notnull 'updated_at'"`
}

func (r *Response) TableName() string {
	return "responses"
}
