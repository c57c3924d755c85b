package entity

import "strconv"

const (
	TotalKey       = "TOTAL"
	// 状态本身为TOTAL时改用该键，避免与合计混在一起
	TotalStatusKey = "TOTAL (status)"
)

// StatusFrequencyTable 统计每种状态出现的次数，保持首次出现的顺序
type StatusFrequencyTable struct {
	order  []string
	counts map[string]int
}

// CountStatuses 统计状态并追加TOTAL
// TOTAL在插入前计算，因此不会把自身计算在内
func CountStatuses(statuses []string) *StatusFrequencyTable {
	t := &StatusFrequencyTable{counts: make(map[string]int)}
	for _, s := range statuses {
		if s == TotalKey {
			s = TotalStatusKey
		}
		t.add(s, 1)
	}

	var total int
	for _, k := range t.order {
		total += t.counts[k]
	}
	t.order = append(t.order, TotalKey)
	t.counts[TotalKey] = total
	return t
}

func (t *StatusFrequencyTable) add(status string, n int) {
	if _, ok := t.counts[status]; !ok {
		t.order = append(t.order, status)
	}
	t.counts[status] += n
}

func (t *StatusFrequencyTable) Count(status string) int {
	return t.counts[status]
}

func (t *StatusFrequencyTable) Total() int {
	return t.counts[TotalKey]
}

// Keys 返回所有键（包括TOTAL），按插入顺序
func (t *StatusFrequencyTable) Keys() []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	return keys
}

func (t *StatusFrequencyTable) Table() Table {
	out := Table{StatusCountHeader}
	for _, k := range t.order {
		out = append(out, []string{k, strconv.Itoa(t.counts[k])})
	}
	return out
}
