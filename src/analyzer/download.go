package analyzer

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrewyi/pyparser/src/util"
)

var pdfA4Pattern = regexp.MustCompile(`.+pdf-a4\.zip$`)

// ParseArchiveLink 返回下载页中PDF(A4)压缩包的绝对地址
func ParseArchiveLink(doc *goquery.Document, pageURL string) (string, error) {
	table, err := Locate(doc.Selection, "table", Class("docutils"))
	if err != nil {
		return "", err
	}
	a, err := Locate(table, "a", Match("href", pdfA4Pattern))
	if err != nil {
		return "", err
	}
	return util.ResolveURL(pageURL, a.AttrOr("href", ""))
}
