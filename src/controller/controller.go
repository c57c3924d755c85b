package controller

import (
	"github.com/andrewyi/pyparser/src/entity"
	"github.com/andrewyi/pyparser/src/enum"
)

type Controller interface {
	// 返回nil表示没有需要输出的内容
	Process(enum.Mode) (entity.Table, error)
}
