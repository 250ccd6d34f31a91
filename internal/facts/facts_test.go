package facts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactMatchesEitherOrder(t *testing.T) {
	f := Fact{3, 7}
	assert.True(t, f.Matches(3, 7))
	assert.True(t, f.Matches(7, 3))
	assert.False(t, f.Matches(3, 6))
	assert.Equal(t, 21, f.Product())
}

func TestFactJSON(t *testing.T) {
	data, err := json.Marshal([]Fact{{2, 9}, {0, 4}})
	require.NoError(t, err)
	assert.JSONEq(t, `[[2,9],[0,4]]`, string(data))

	var back []Fact
	require.NoError(t, json.Unmarshal([]byte(`[[12, 5]]`), &back))
	assert.Equal(t, []Fact{{12, 5}}, back)
}

func TestGrid(t *testing.T) {
	assert.Equal(t, 100, Grid10.Cells())
	assert.Equal(t, 225, Grid15.Cells())
	assert.Equal(t, 81, Grid10.MaxProduct())
	assert.Equal(t, 225, Grid15.MaxProduct())
	assert.NoError(t, Grid10.Validate())
	assert.Error(t, Grid{Min: 5, Max: 2}.Validate())
	assert.Error(t, Grid{Min: -1, Max: 2}.Validate())
	assert.Error(t, Grid{Min: 1, Max: 100000}.Validate())
	assert.NoError(t, Grid{Min: 1, Max: MaxOperand}.Validate())
}

func TestToggle(t *testing.T) {
	s := NewSet(Grid10)
	s.Toggle(2, 3)
	assert.True(t, s.Has(2, 3))
	assert.False(t, s.Has(3, 2))

	s.Toggle(2, 3)
	assert.False(t, s.Has(2, 3))

	s.Toggle(10, 1)
	assert.Equal(t, 0, s.Len(), "out-of-grid facts are ignored")
}

func TestToggleRowAndCol(t *testing.T) {
	s := NewSet(Grid10)
	s.Toggle(4, 0)

	s.ToggleRow(4)
	assert.Equal(t, 10, s.Len(), "partially selected row becomes fully selected")

	s.ToggleRow(4)
	assert.Equal(t, 0, s.Len(), "fully selected row is cleared")

	s.ToggleCol(7)
	for a := 0; a <= 9; a++ {
		assert.True(t, s.Has(a, 7))
	}
	assert.Equal(t, 10, s.Len())
}

func TestSelectAllClearAndFactsOrder(t *testing.T) {
	s := FullSet(Grid{Min: 1, Max: 3})
	assert.Equal(t, 9, s.Len())

	got := s.Facts()
	require.Len(t, got, 9)
	assert.Equal(t, Fact{1, 1}, got[0])
	assert.Equal(t, Fact{1, 2}, got[1])
	assert.Equal(t, Fact{3, 3}, got[8])

	s.Clear()
	assert.Empty(t, s.Facts())
}

func TestAddIgnoresFactsOutsideGrid(t *testing.T) {
	s := NewSet(Grid10)
	for _, f := range []Fact{{1, 2}, {9, 9}, {11, 1}} {
		s.Add(f.A, f.B)
	}
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(9, 9))
}
