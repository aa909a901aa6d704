package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEach(t *testing.T) {
	for _, snapshot := range []bool{false, true} {
		var got []string
		Each([]string{"a", "b", "c"}, func(v string) {
			got = append(got, v)
		}, snapshot)
		assert.Equal(t, []string{"a", "b", "c"}, got, "snapshot=%v", snapshot)
	}

	Each([]int(nil), func(v int) {
		t.Errorf("called on empty slice: %d", v)
	}, true)

	assert.NotPanics(t, func() {
		Each([]int{1}, nil, false)
	})
}

func TestEachIndexed(t *testing.T) {
	type visit struct {
		i int
		v rune
	}

	var got []visit
	EachIndexed([]rune("xyz"), func(i int, v rune) {
		got = append(got, visit{i, v})
	}, false)

	assert.Equal(t, []visit{{0, 'x'}, {1, 'y'}, {2, 'z'}}, got)
}

func TestEachIndexed_Array(t *testing.T) {
	arr := [4]int{10, 20, 30, 40}

	sum := 0
	EachIndexed(arr[:], func(i, v int) {
		sum += i * v
	}, false)

	assert.Equal(t, 0*10+1*20+2*30+3*40, sum)
}

func TestEachUntil(t *testing.T) {
	tests := []struct {
		name      string
		s         []int
		stopAt    int
		wantCalls int
	}{
		{"empty", nil, 1, 0},
		{"first", []int{1, 2, 3}, 1, 1},
		{"middle", []int{1, 2, 3}, 2, 2},
		{"last", []int{1, 2, 3}, 3, 3},
		{"never", []int{1, 2, 3}, 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, snapshot := range []bool{false, true} {
				calls := 0
				EachUntil(tt.s, func(v int) bool {
					calls++
					return v == tt.stopAt
				}, snapshot)
				assert.Equal(t, tt.wantCalls, calls, "snapshot=%v", snapshot)
			}
		})
	}
}

func TestEach_SnapshotSurvivesRemoval(t *testing.T) {
	list := []int{1, 2, 3, 4, 5}
	const m = 5

	var visited []int
	Each(list, func(v int) {
		visited = append(visited, v)
		// remove the head of the original on every visit
		if len(list) > 0 {
			list = append(list[:0], list[1:]...)
		}
	}, true)

	assert.Len(t, visited, m)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, visited)
	assert.Empty(t, list)
}

func TestEach_SnapshotSurvivesAppend(t *testing.T) {
	list := make([]int, 3, 16)
	copy(list, []int{1, 2, 3})

	calls := 0
	EachIndexed(list, func(i, v int) {
		calls++
		list = append(list, v*10)
		list[i] = -1
	}, true)

	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{-1, -1, -1, 10, 20, 30}, list)
}

func TestEachFrom(t *testing.T) {
	s := []string{"a", "b", "c", "d"}

	var got []string
	EachFrom(s, 2, func(_ int, v string) bool {
		got = append(got, v)
		return false
	})
	assert.Equal(t, []string{"c", "d", "a", "b"}, got)

	got = got[:0]
	EachFrom(s, 3, func(i int, v string) bool {
		got = append(got, v)
		return i == 0
	})
	assert.Equal(t, []string{"d", "a"}, got)

	EachFrom([]string{}, 0, func(i int, v string) bool {
		t.Errorf("called on empty slice: %d %s", i, v)
		return false
	})
}
