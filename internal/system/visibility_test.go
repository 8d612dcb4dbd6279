// internal/system/visibility_test.go
package system

import (
	"testing"

	"go-angioplasty/internal/component"
	"go-angioplasty/internal/defs"
)

func TestCellVisible(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		stage defs.Stage
		want  bool
	}{
		{"center cell, healthy", 100, defs.StageHealthy, true},
		{"center cell, rupture", 100, defs.StageRuptureThrombosis, false},
		{"center cell, necrosis", 100, defs.StageNecrosis, false},
		{"wall-side cell, rupture", 75, defs.StageRuptureThrombosis, true},
		{"wall-side cell, necrosis", 128, defs.StageNecrosis, true},
		{"band edge low, rupture", 90, defs.StageRuptureThrombosis, true},
		{"band edge high, rupture", 110, defs.StageRuptureThrombosis, true},
		{"just inside band, rupture", 90.001, defs.StageRuptureThrombosis, false},
		{"just inside band, necrosis", 109.999, defs.StageNecrosis, false},
		{"center cell, guidewire", 100, defs.StageGuidewire, true},
		{"center cell, balloon", 100, defs.StageBalloon, true},
		{"center cell, restored", 100, defs.StageRestored, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := component.BloodCell{ID: 0, Y: tt.y}
			if got := CellVisible(cell, tt.stage); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCellFlowDuration(t *testing.T) {
	cell := component.BloodCell{SpeedVariance: 1.2}
	params := defs.Resolve(defs.StageHealthy)
	if got := CellFlowDuration(cell, params); got != 2.4 {
		t.Errorf("expected 2.4, got %v", got)
	}

	// Сентинель остановленного потока не масштабируется разбросом скорости
	stopped := defs.Resolve(defs.StageNecrosis)
	for _, variance := range []float64{0.8, 1.0, 1.2} {
		slow := component.BloodCell{SpeedVariance: variance}
		if got := CellFlowDuration(slow, stopped); got != defs.FlowStopped {
			t.Errorf("variance %v: expected %v, got %v", variance, defs.FlowStopped, got)
		}
	}
}
