package analyzer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrewyi/pyparser/src/entity"
)

const allVersionsMarker = "All versions"

var versionPattern = regexp.MustCompile(`Python (?P<version>\d\.\d+) \((?P<status>.*)\)`)

// ParseVersions 从侧边栏的 "All versions" 列表中提取所有版本
func ParseVersions(doc *goquery.Document) ([]entity.VersionEntry, error) {
	sidebar, err := Locate(doc.Selection, "div", Class("sphinxsidebarwrapper"))
	if err != nil {
		return nil, err
	}

	var list *goquery.Selection
	uls := FindAll(sidebar, "ul")
	for i := range uls.Nodes {
		if ul := uls.Eq(i); strings.Contains(ul.Text(), allVersionsMarker) {
			list = ul
			break
		}
	}
	if list == nil {
		return nil, ErrNoVersionsFound
	}

	var entries []entity.VersionEntry
	anchors := FindAll(list, "a")
	for i := range anchors.Nodes {
		a := anchors.Eq(i)
		entries = append(entries, ParseVersionText(a.AttrOr("href", ""), a.Text()))
	}
	return entries, nil
}

// ParseVersionText 将 "Python 3.9 (stable)" 拆分为版本与状态
func ParseVersionText(link string, text string) entity.VersionEntry {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return entity.VersionEntry{URL: link, Version: text}
	}
	return entity.VersionEntry{
		URL:     link,
		Version: m[versionPattern.SubexpIndex("version")],
		Status:  m[versionPattern.SubexpIndex("status")],
	}
}
