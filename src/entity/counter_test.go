package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountStatuses(t *testing.T) {
	table := CountStatuses([]string{"Final", "Draft", "Final", "Active", "Final"})

	assert.Equal(t, 3, table.Count("Final"))
	assert.Equal(t, 1, table.Count("Draft"))
	assert.Equal(t, 1, table.Count("Active"))
	assert.Equal(t, 5, table.Total())
	assert.Equal(t, []string{"Final", "Draft", "Active", TotalKey}, table.Keys())
}

func TestCountStatuses_TotalEqualsSumOfOthers(t *testing.T) {
	inputs := [][]string{
		{"Draft"},
		{"Final", "Final"},
		{"Accepted", "Rejected", "Withdrawn", "Rejected", "Superseded", "Final"},
	}
	for _, statuses := range inputs {
		table := CountStatuses(statuses)

		var sum int
		for _, k := range table.Keys() {
			if k != TotalKey {
				sum += table.Count(k)
			}
		}
		assert.Equal(t, sum, table.Total())
		assert.Equal(t, len(statuses), table.Total())
	}
}

func TestStatusFrequencyTable_Table(t *testing.T) {
	table := CountStatuses([]string{"Draft", "Final", "Draft"}).Table()

	require.Len(t, table, 4)
	assert.Equal(t, StatusCountHeader, table[0])
	assert.Equal(t, []string{"Draft", "2"}, table[1])
	assert.Equal(t, []string{"Final", "1"}, table[2])
	assert.Equal(t, []string{TotalKey, "3"}, table[3])
}

func TestCountStatuses_Empty(t *testing.T) {
	table := CountStatuses(nil)
	assert.Equal(t, 0, table.Total())
	assert.Equal(t, []string{TotalKey}, table.Keys())
}

func TestCountStatuses_LiteralTotalStatus(t *testing.T) {
	table := CountStatuses([]string{"Final", TotalKey, TotalKey})

	assert.Equal(t, 2, table.Count(TotalStatusKey))
	assert.Equal(t, 3, table.Total())
	assert.Equal(t, []string{"Final", TotalStatusKey, TotalKey}, table.Keys())

	var sum int
	for _, k := range table.Keys() {
		if k != TotalKey {
			sum += table.Count(k)
		}
	}
	assert.Equal(t, sum, table.Total())
}
