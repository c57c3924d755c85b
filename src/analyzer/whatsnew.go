package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrewyi/pyparser/src/util"
)

// ParseWhatsNewLinks 提取whats-new首页中每个版本的链接，已按pageURL解析为绝对地址
func ParseWhatsNewLinks(doc *goquery.Document, pageURL string) ([]string, error) {
	mainSection, err := Locate(doc.Selection, "section", ID("what-s-new-in-python"))
	if err != nil {
		return nil, err
	}
	wrapper, err := Locate(mainSection, "div", Class("toctree-wrapper"))
	if err != nil {
		return nil, err
	}

	var links []string
	items := FindAll(wrapper, "li", Class("toctree-l1"))
	for i := range items.Nodes {
		a, err := Locate(items.Eq(i), "a")
		if err != nil {
			return nil, err
		}
		link, err := util.ResolveURL(pageURL, a.AttrOr("href", ""))
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

// ParseTitle 返回页面中第一个h1的文字
func ParseTitle(doc *goquery.Document) (string, error) {
	h1, err := Locate(doc.Selection, "h1")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(h1.Text()), nil
}
