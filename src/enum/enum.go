package enum

import (
	"fmt"
	"strings"
)

const (
	// 定义了page的状态
	PageStatePending = 0
	PageStateSuccess = 1
	PageStateFail    = 2
)

// Mode 为解析模式，命令行中以字符串形式给出
type Mode int

const (
	ModeWhatsNew Mode = iota
	ModeLatestVersions
	ModeDownload
	ModePep
)

var modeNames = []string{
	ModeWhatsNew:       "whats-new",
	ModeLatestVersions: "latest-versions",
	ModeDownload:       "download",
	ModePep:            "pep",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// ModeNames 按固定顺序返回所有模式名，用于命令行帮助
func ModeNames() []string {
	names := make([]string, len(modeNames))
	copy(names, modeNames)
	return names
}

func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q, choose from: %s", s, strings.Join(modeNames, ", "))
}

// OutputFormat 决定结果的展示方式
type OutputFormat string

const (
	OutputDefault OutputFormat = ""
	OutputPretty  OutputFormat = "pretty"
	OutputFile    OutputFormat = "file"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputDefault, OutputPretty, OutputFile:
		return f, nil
	}
	return "", fmt.Errorf("unknown output %q, choose from: %s, %s", s, OutputPretty, OutputFile)
}
