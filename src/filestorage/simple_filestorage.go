package filestorage

import (
	"io"
	"os"
	"path/filepath"
)

// SimpleFileStorage 将文件平铺保存在location目录下，目录不存在时自动创建
type SimpleFileStorage struct {
	location string
}

func NewSimpleFileStorage(location string) FileStorage {
	return &SimpleFileStorage{
		location: location,
	}
}

func (s *SimpleFileStorage) Store(name string, content []byte) (string, error) {
	f, fp, err := s.Create(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err = f.Write(content); err != nil {
		return "", err
	}
	return fp, f.Close()
}

func (s *SimpleFileStorage) Create(name string) (io.WriteCloser, string, error) {
	if err := os.MkdirAll(s.location, os.ModePerm); err != nil {
		return nil, "", err
	}

	// 只取文件名部分，防止写到location之外
	fp := filepath.Join(s.location, filepath.Base(name))
	f, err := os.Create(fp)
	if err != nil {
		return nil, "", err
	}
	return f, fp, nil
}
