// internal/geometry/stent_test.go
package geometry

import (
	"math"
	"testing"

	"go-angioplasty/internal/config"
)

func TestStentPaths_RadiusFormula(t *testing.T) {
	tests := []struct {
		expansion float64
		want      float64
	}{
		{0, 6},
		{0.5, 28},
		{1, 50},
		{-1, 6},  // клампится снизу
		{2, 50},  // клампится сверху
	}
	for _, tt := range tests {
		if got := StentPaths(tt.expansion).Radius; got != tt.want {
			t.Errorf("expansion %v: expected radius %v, got %v", tt.expansion, tt.want, got)
		}
	}
}

func TestStentPaths_StrutCount(t *testing.T) {
	for _, expansion := range []float64{0, 0.05, 0.1, 0.5, 1} {
		mesh := StentPaths(expansion)
		if got := len(mesh.Struts); got != 16 {
			t.Errorf("expansion %v: expected 16 strut polylines, got %d", expansion, got)
		}
		for i, strut := range mesh.Struts {
			if len(strut) != 3 {
				t.Errorf("expansion %v: strut %d has %d points, expected 3", expansion, i, len(strut))
			}
		}
	}
}

// Перемычки пусты тогда и только тогда, когда expansion <= 0.1.
func TestStentPaths_CrossStrutThreshold(t *testing.T) {
	tests := []struct {
		expansion float64
		want      int
	}{
		{0, 0},
		{0.1, 0},
		{0.100001, 16},
		{0.5, 16},
		{1, 16},
	}
	for _, tt := range tests {
		if got := len(StentPaths(tt.expansion).CrossStruts); got != tt.want {
			t.Errorf("expansion %v: expected %d cross struts, got %d", tt.expansion, tt.want, got)
		}
	}
}

func TestStentPaths_ZigzagProfile(t *testing.T) {
	// Обжатый стент плоский: вершина зигзага на кромке
	flat := StentPaths(0)
	top := flat.Struts[0]
	if top[1].Y != top[0].Y {
		t.Errorf("crimped stent must be flat, midpoint offset %v", top[1].Y-top[0].Y)
	}

	// Раскрытый — волнистый: середина верхней кромки утоплена на 5 внутрь
	full := StentPaths(1)
	top = full.Struts[0]
	if got := top[1].Y - top[0].Y; got != config.StentZigzagDepth {
		t.Errorf("expected top midpoint dip %v, got %v", config.StentZigzagDepth, got)
	}
	bottom := full.Struts[1]
	if got := bottom[0].Y - bottom[1].Y; got != config.StentZigzagDepth {
		t.Errorf("expected bottom midpoint rise %v, got %v", config.StentZigzagDepth, got)
	}
}

func TestStentPaths_SpanAndSegments(t *testing.T) {
	mesh := StentPaths(1)
	first := mesh.Struts[0]
	last := mesh.Struts[len(mesh.Struts)-2] // верхняя кромка последнего сегмента
	left := first[0].X
	right := last[2].X
	if got := right - left; math.Abs(got-config.StentLength) > 1e-9 {
		t.Errorf("expected stent span %v, got %v", config.StentLength, got)
	}
	segLen := config.StentLength / config.StentSegments
	if got := first[2].X - first[0].X; math.Abs(got-segLen) > 1e-9 {
		t.Errorf("expected segment length %v, got %v", segLen, got)
	}
}

// V-образные перемычки соединяют кромки с центральной линией просвета.
func TestStentPaths_CrossStrutsReachCenterline(t *testing.T) {
	mesh := StentPaths(1)
	for i, cross := range mesh.CrossStruts {
		if len(cross) != 3 {
			t.Fatalf("cross strut %d has %d points, expected 3", i, len(cross))
		}
		if cross[1].Y != config.LumenCenterY {
			t.Errorf("cross strut %d midpoint y=%v, expected centerline %v", i, cross[1].Y, config.LumenCenterY)
		}
	}
}

// Штрих толще в обжатом состоянии и тоньше в раскрытом.
func TestStentMesh_StrokeWidths(t *testing.T) {
	crimped := StentPaths(0)
	expanded := StentPaths(1)
	if crimped.StrutWidth() <= expanded.StrutWidth() {
		t.Errorf("expected crimped struts thicker: %v vs %v", crimped.StrutWidth(), expanded.StrutWidth())
	}
	if crimped.CrossWidth() <= expanded.CrossWidth() {
		t.Errorf("expected crimped cross struts thicker: %v vs %v", crimped.CrossWidth(), expanded.CrossWidth())
	}
}

func TestStentPaths_Idempotent(t *testing.T) {
	a := StentPaths(0.6)
	b := StentPaths(0.6)
	if len(a.Struts) != len(b.Struts) || len(a.CrossStruts) != len(b.CrossStruts) {
		t.Fatal("repeated generation differs in shape")
	}
	for i := range a.Struts {
		if a.Struts[i].Data() != b.Struts[i].Data() {
			t.Errorf("strut %d differs: %q vs %q", i, a.Struts[i].Data(), b.Struts[i].Data())
		}
	}
}
