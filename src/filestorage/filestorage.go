package filestorage

import (
	"io"
)

type FileStorage interface {
	// 保存内容，返回文件路径
	Store(name string, content []byte) (string, error)
	// 创建文件用于写入，调用方负责Close
	Create(name string) (io.WriteCloser, string, error)
}
