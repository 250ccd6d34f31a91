package components

import "testing"

func TestMeterCells(t *testing.T) {
	m := NewMeter(20)
	tests := []struct {
		used, total, want int
	}{
		{0, 600, 0},
		{300, 600, 10},
		{599, 600, 19},
		{600, 600, 20},
		{900, 600, 20},
		{5, 0, 0},
		{-3, 600, 0},
	}
	for _, tt := range tests {
		if got := m.Cells(tt.used, tt.total); got != tt.want {
			t.Errorf("Cells(%d, %d) = %d, want %d", tt.used, tt.total, got, tt.want)
		}
	}
	if w := NewMeter(1).Width; w != 4 {
		t.Errorf("minimum width = %d, want 4", w)
	}
}
