package util

import (
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "PYPARSER"

// filePath为空或文件不存在时仅使用默认值与环境变量
func ReadConfig(filePath string, defaults map[string]interface{}, out interface{}) error {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // for nested structure
	v.AutomaticEnv()

	if filePath != "" {
		if _, err := os.Stat(filePath); err == nil {
			v.SetConfigFile(filePath)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	return v.Unmarshal(out)
}

// 以base为基准解析相对链接
func ResolveURL(base string, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}

// 取url path的最后一段作为文件名
func FileNameFromURL(u string) (string, error) {
	oURL, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	return path.Base(oURL.Path), nil
}

// string slice equal
func StringSliceEqual(s1 []string, s2 []string) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i, v := range s1 {
		if v != s2[i] {
			return false
		}
	}
	return true
}
