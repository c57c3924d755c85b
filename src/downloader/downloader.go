package downloader

import (
	"github.com/andrewyi/pyparser/src/entity"
)

type Downloader interface {
	Download(string) entity.PageInfo
}
