package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrewyi/pyparser/src/entity"
	"github.com/andrewyi/pyparser/src/util"
)

const pepTableClass = "pep-zero-table docutils align-default"

// 特殊PEP的状态在汇总表中不可靠，统一替换为固定值
type SpecialPep struct {
	Number string
	Label  string
}

// ParsePepTables 提取所有汇总表中的(链接, 声明状态)，同一次解析内按完全相等去重，保持首次出现的顺序
func ParsePepTables(doc *goquery.Document, indexURL string, special SpecialPep) ([]entity.PepEntry, error) {
	var (
		peps []entity.PepEntry
		seen = make(map[entity.PepEntry]struct{})
	)

	tables := FindAll(doc.Selection, "table", Exact("class", pepTableClass))
	for i := range tables.Nodes {
		tbody, err := Locate(tables.Eq(i), "tbody")
		if err != nil {
			return nil, err
		}
		rows := FindAll(tbody, "tr")
		for j := range rows.Nodes {
			pep, err := parsePepRow(rows.Eq(j), indexURL, special)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[pep]; ok {
				continue
			}
			seen[pep] = struct{}{}
			peps = append(peps, pep)
		}
	}
	return peps, nil
}

// 第一列为状态缩写（title中为完整状态），第二列为链接
func parsePepRow(row *goquery.Selection, indexURL string, special SpecialPep) (entity.PepEntry, error) {
	cells := FindAll(row, "td")
	if cells.Length() < 2 {
		return entity.PepEntry{}, &ElementNotFoundError{Tag: "td"}
	}

	a, err := Locate(cells.Eq(1), "a", Has("href"))
	if err != nil {
		return entity.PepEntry{}, err
	}
	link, err := util.ResolveURL(indexURL, a.AttrOr("href", ""))
	if err != nil {
		return entity.PepEntry{}, err
	}

	if special.Number != "" && strings.TrimSpace(a.Text()) == special.Number {
		return entity.PepEntry{URL: link, Label: special.Label}, nil
	}

	abbr, err := Locate(cells.Eq(0), "abbr", Has("title"))
	if err != nil {
		return entity.PepEntry{}, err
	}
	return entity.PepEntry{URL: link, Label: abbr.AttrOr("title", "")}, nil
}

// ParsePepCard 读取PEP自身页面上的状态与类型
// 字段列表中前两个abbr依次为status、type
func ParsePepCard(doc *goquery.Document) (entity.ReconciledStatus, error) {
	dl, err := Locate(doc.Selection, "dl", Exact("class", "rfc2822 field-list simple"))
	if err != nil {
		return entity.ReconciledStatus{}, err
	}
	abbrs := FindAll(dl, "abbr")
	if abbrs.Length() < 2 {
		return entity.ReconciledStatus{}, &ElementNotFoundError{Tag: "abbr"}
	}
	return entity.ReconciledStatus{
		Status: abbrs.Eq(0).Text(),
		Type:   abbrs.Eq(1).Text(),
	}, nil
}

// NormalizeLabel 将 "Standards Track, Final" 拆分为 [type, status]
func NormalizeLabel(label string) (entity.NormalizedLabel, error) {
	parts := strings.SplitN(label, ",", 2)
	if len(parts) < 2 {
		return entity.NormalizedLabel{}, &MalformedLabelError{Label: label}
	}
	return entity.NormalizedLabel{
		Type:   parts[0],
		Status: strings.TrimSpace(parts[1]),
	}, nil
}
