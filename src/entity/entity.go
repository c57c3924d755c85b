package entity

// 保存了下载的内容
type PageInfo struct {
	URL       string
	State     uint32 // enum.PageState*
	Remark    string // error description, if any
	Content   string
	FromCache bool
}

// Table 为最终输出的数据，第一行为表头
type Table [][]string

var (
	ListItemHeader     = []string{"link", "title", "editor/author"}
	VersionEntryHeader = []string{"link", "version", "status"}
	StatusCountHeader  = []string{"status", "count"}
)

// whats-new页面中的一条记录，Secondary当前不会被填充
type ListItem struct {
	URL       string
	Title     string
	Secondary string
}

func (i ListItem) Row() []string {
	return []string{i.URL, i.Title, i.Secondary}
}

// 侧边栏中的一个文档版本
// 当文字不符合 "Python x.y (status)" 时，Version为原始文字，Status为空
type VersionEntry struct {
	URL     string
	Version string
	Status  string
}

func (v VersionEntry) Row() []string {
	return []string{v.URL, v.Version, v.Status}
}

// PEP汇总表中的一行，Label为声明的状态，例如 "Standards Track, Final"
type PepEntry struct {
	URL   string
	Label string
}

// PEP自身页面上的类型与状态
type ReconciledStatus struct {
	Type   string
	Status string
}

// Pair 按 [type, status] 顺序返回，用于与NormalizedLabel比较
func (r ReconciledStatus) Pair() []string {
	return []string{r.Type, r.Status}
}

// 由Label拆分得到
type NormalizedLabel struct {
	Type   string
	Status string
}

func (n NormalizedLabel) Pair() []string {
	return []string{n.Type, n.Status}
}

func ListItemTable(items []ListItem) Table {
	t := Table{ListItemHeader}
	for _, i := range items {
		t = append(t, i.Row())
	}
	return t
}

func VersionEntryTable(entries []VersionEntry) Table {
	t := Table{VersionEntryHeader}
	for _, e := range entries {
		t = append(t, e.Row())
	}
	return t
}
