// 页面解析：只处理已下载好的内容，不负责下载
// 各解析函数针对固定的页面结构，结构发生变化时返回错误而不是尝试恢复
package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrewyi/pyparser/src/entity"
	"github.com/andrewyi/pyparser/src/enum"
)

var (
	ErrNoVersionsFound = errors.New("no \"All versions\" list found in sidebar")
	ErrPageNotFetched  = errors.New("page not fetched")
)

// 必需的元素不存在，说明页面结构已变化
type ElementNotFoundError struct {
	Tag   string
	Attrs []Attr
}

func (e *ElementNotFoundError) Error() string {
	if len(e.Attrs) == 0 {
		return fmt.Sprintf("element not found: <%s>", e.Tag)
	}
	parts := make([]string, 0, len(e.Attrs))
	for _, a := range e.Attrs {
		parts = append(parts, a.String())
	}
	return fmt.Sprintf("element not found: <%s %s>", e.Tag, strings.Join(parts, " "))
}

// 汇总表中的状态无法按 "type, status" 拆分
type MalformedLabelError struct {
	Label string
}

func (e *MalformedLabelError) Error() string {
	return fmt.Sprintf("malformed status label %q", e.Label)
}

func Parse(page entity.PageInfo) (*goquery.Document, error) {
	if page.State != enum.PageStateSuccess {
		return nil, fmt.Errorf("%w: %s: %s", ErrPageNotFetched, page.URL, page.Remark)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Content))
	if err != nil {
		return nil, fmt.Errorf("fail to parse %s: %w", page.URL, err)
	}
	return doc, nil
}
