package clone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSlice(t *testing.T) {
	orig := []int{1, 2, 3}
	c := Slice(orig)
	assert.Equal(t, []int{1, 2, 3}, c)

	c[0] = 100
	c = append(c, 4)
	assert.Equal(t, []int{1, 2, 3}, orig)

	orig[1] = 200
	assert.Equal(t, []int{100, 2, 3, 4}, c)

	assert.Nil(t, Slice([]int(nil)))
	assert.NotNil(t, Slice([]int{}))
}

func TestSlice_NamedType(t *testing.T) {
	type path []struct{ X, Y int }

	p := path{{1, 2}, {3, 4}}
	c := Slice(p)
	c[0].X = 9

	assert.IsType(t, path(nil), c)
	assert.Equal(t, 1, p[0].X)
}

func TestMap(t *testing.T) {
	orig := map[int]float64{1: 1.5, 2: 2.5}
	c := Map(orig)
	assert.Equal(t, orig, c)

	c[3] = 3.5
	delete(c, 1)
	assert.Equal(t, map[int]float64{1: 1.5, 2: 2.5}, orig)

	assert.Nil(t, Map(map[int]int(nil)))
}

func TestMapOfSlices(t *testing.T) {
	orig := map[string][]int{
		"a": {1, 2},
		"b": {3},
		"c": nil,
	}

	c := MapOfSlices(orig)
	assert.Equal(t, orig, c)

	c["a"][0] = 100
	c["b"] = append(c["b"], 4)
	c["d"] = []int{5}

	assert.Equal(t, map[string][]int{
		"a": {1, 2},
		"b": {3},
		"c": nil,
	}, orig)

	assert.Nil(t, MapOfSlices(map[string][]int(nil)))
}

func TestGrid(t *testing.T) {
	orig := [][]int{{1, 2}, {3, 4}}
	c := Grid(orig)
	assert.Equal(t, orig, c)

	c[1][1] = 40
	assert.Equal(t, 4, orig[1][1])

	assert.Nil(t, Grid([][]int(nil)))
}
