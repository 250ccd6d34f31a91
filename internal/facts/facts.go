// Package facts models the selectable grid of multiplication facts.
package facts

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Fact is an ordered operand pair identifying one multiplication identity.
type Fact struct {
	A int
	B int
}

// Product returns A×B.
func (f Fact) Product() int {
	return f.A * f.B
}

// Matches reports whether (a, b) is this fact in either order.
func (f Fact) Matches(a, b int) bool {
	return (f.A == a && f.B == b) || (f.A == b && f.B == a)
}

func (f Fact) String() string {
	return fmt.Sprintf("%d×%d", f.A, f.B)
}

// MarshalJSON encodes a fact as the two-element array [a, b].
func (f Fact) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, "[%d,%d]", f.A, f.B), nil
}

// UnmarshalJSON accepts the two-element array form.
func (f *Fact) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode fact: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("decode fact: want 2 operands, got %d", len(pair))
	}
	f.A, f.B = pair[0], pair[1]
	return nil
}

// Grid is the inclusive operand range offered for selection.
type Grid struct {
	Min int
	Max int
}

// Standard grids.
var (
	// Grid10 is the classic 0–9 times table.
	Grid10 = Grid{Min: 0, Max: 9}
	// Grid15 is the extended 1–15 table used by default for new tasks.
	Grid15 = Grid{Min: 1, Max: 15}
)

// MaxOperand is the largest operand any grid or fact list may use.
const MaxOperand = 99

// Contains reports whether both operands are inside the grid.
func (g Grid) Contains(a, b int) bool {
	return a >= g.Min && a <= g.Max && b >= g.Min && b <= g.Max
}

// Size returns the number of operands per side.
func (g Grid) Size() int {
	if g.Max < g.Min {
		return 0
	}
	return g.Max - g.Min + 1
}

// Cells returns the total number of facts in the grid.
func (g Grid) Cells() int {
	return g.Size() * g.Size()
}

// MaxProduct returns the largest product any fact in the grid can have.
func (g Grid) MaxProduct() int {
	lo, hi := g.Min*g.Min, g.Max*g.Max
	if lo > hi {
		return lo
	}
	return hi
}

// Validate checks the range is usable.
func (g Grid) Validate() error {
	if g.Min < 0 {
		return fmt.Errorf("grid minimum %d must not be negative", g.Min)
	}
	if g.Max < g.Min {
		return fmt.Errorf("grid maximum %d is below minimum %d", g.Max, g.Min)
	}
	if g.Max > MaxOperand {
		return fmt.Errorf("grid maximum %d is above %d", g.Max, MaxOperand)
	}
	return nil
}

// Set is a selection of facts within a Grid.
type Set struct {
	grid     Grid
	selected map[Fact]struct{}
}

// NewSet creates an empty selection over grid.
func NewSet(grid Grid) *Set {
	return &Set{grid: grid, selected: make(map[Fact]struct{})}
}

// FullSet creates a selection with every fact of grid selected.
func FullSet(grid Grid) *Set {
	s := NewSet(grid)
	s.SelectAll()
	return s
}

// Grid returns the grid this selection lives in.
func (s *Set) Grid() Grid {
	return s.grid
}

// Has reports whether (a, b) is selected.
func (s *Set) Has(a, b int) bool {
	_, ok := s.selected[Fact{a, b}]
	return ok
}

// Len returns the number of selected facts.
func (s *Set) Len() int {
	return len(s.selected)
}

// Add selects (a, b). Facts outside the grid are ignored.
func (s *Set) Add(a, b int) {
	if s.grid.Contains(a, b) {
		s.selected[Fact{a, b}] = struct{}{}
	}
}

// Toggle flips the selection of a single fact.
func (s *Set) Toggle(a, b int) {
	if !s.grid.Contains(a, b) {
		return
	}
	f := Fact{a, b}
	if _, ok := s.selected[f]; ok {
		delete(s.selected, f)
		return
	}
	s.selected[f] = struct{}{}
}

// ToggleRow selects every fact with first operand a, or clears the row when
// it is already fully selected.
func (s *Set) ToggleRow(a int) {
	s.toggleLine(func(i int) Fact { return Fact{a, i} })
}

// ToggleCol is ToggleRow for the second operand.
func (s *Set) ToggleCol(b int) {
	s.toggleLine(func(i int) Fact { return Fact{i, b} })
}

func (s *Set) toggleLine(at func(int) Fact) {
	full := true
	for i := s.grid.Min; i <= s.grid.Max; i++ {
		f := at(i)
		if !s.grid.Contains(f.A, f.B) {
			return
		}
		if _, ok := s.selected[f]; !ok {
			full = false
		}
	}
	for i := s.grid.Min; i <= s.grid.Max; i++ {
		if full {
			delete(s.selected, at(i))
		} else {
			s.selected[at(i)] = struct{}{}
		}
	}
}

// SelectAll selects every fact in the grid.
func (s *Set) SelectAll() {
	for a := s.grid.Min; a <= s.grid.Max; a++ {
		for b := s.grid.Min; b <= s.grid.Max; b++ {
			s.selected[Fact{a, b}] = struct{}{}
		}
	}
}

// Clear removes every selection.
func (s *Set) Clear() {
	clear(s.selected)
}

// Facts returns the selected facts in row-major order.
func (s *Set) Facts() []Fact {
	out := make([]Fact, 0, len(s.selected))
	for f := range s.selected {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

