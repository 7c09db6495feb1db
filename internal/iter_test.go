package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	all := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, all)

	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestSortedMap(t *testing.T) {
	assert := assert.New(t)

	m := map[uint16]string{0x10: "c", 0x02: "b", 0x00: "a"}

	var keys []uint16
	var values []string
	for key, value := range SortedMap(m) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]uint16{0x00, 0x02, 0x10}, keys)
	assert.Equal([]string{"a", "b", "c"}, values)
	assert.True(slices.IsSorted(keys))
}
