package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Attr 为对元素属性的一个约束
type Attr struct {
	Key     string
	Value   string
	Pattern *regexp.Regexp
	token   bool
}

// 属性值完全相等
func Exact(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// class中包含该token
func Class(name string) Attr {
	return Attr{Key: "class", Value: name, token: true}
}

func ID(id string) Attr {
	return Exact("id", id)
}

var anyValue = regexp.MustCompile(``)

// 存在该属性即可
func Has(key string) Attr {
	return Match(key, anyValue)
}

// 属性值匹配正则
func Match(key string, re *regexp.Regexp) Attr {
	return Attr{Key: key, Pattern: re}
}

func (a Attr) String() string {
	switch {
	case a.Pattern != nil:
		return fmt.Sprintf("%s~=/%s/", a.Key, a.Pattern)
	case a.token:
		return fmt.Sprintf("%s~=%q", a.Key, a.Value)
	default:
		return fmt.Sprintf("%s=%q", a.Key, a.Value)
	}
}

func (a Attr) matches(s *goquery.Selection) bool {
	v, ok := s.Attr(a.Key)
	if !ok {
		return false
	}
	switch {
	case a.Pattern != nil:
		return a.Pattern.MatchString(v)
	case a.token:
		for _, f := range strings.Fields(v) {
			if f == a.Value {
				return true
			}
		}
		return false
	default:
		return v == a.Value
	}
}

// FindAll 返回root下所有满足条件的元素，可能为空
func FindAll(root *goquery.Selection, tag string, attrs ...Attr) *goquery.Selection {
	return root.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		for _, a := range attrs {
			if !a.matches(s) {
				return false
			}
		}
		return true
	})
}

// Locate 返回第一个满足条件的元素，不存在时返回*ElementNotFoundError
func Locate(root *goquery.Selection, tag string, attrs ...Attr) (*goquery.Selection, error) {
	found := FindAll(root, tag, attrs...)
	if found.Length() == 0 {
		return nil, &ElementNotFoundError{Tag: tag, Attrs: attrs}
	}
	return found.First(), nil
}
