// internal/geometry/path.go
package geometry

import (
	"fmt"
	"strings"
)

// Point — точка в координатах канвы.
type Point struct {
	X, Y float64
}

// Polyline — незамкнутая ломаная.
type Polyline []Point

// Data возвращает ломаную в виде SVG path data ("M x y L x y ...").
func (p Polyline) Data() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", ftoa(p[0].X), ftoa(p[0].Y))
	for _, pt := range p[1:] {
		fmt.Fprintf(&b, " L %s %s", ftoa(pt.X), ftoa(pt.Y))
	}
	return b.String()
}

// Outline — замкнутый контур.
type Outline []Point

// Empty сообщает, что контур отсутствует (фигура не рисуется).
func (o Outline) Empty() bool {
	return len(o) == 0
}

// Data возвращает контур в виде замкнутого SVG path data ("M ... Z").
func (o Outline) Data() string {
	if o.Empty() {
		return ""
	}
	return Polyline(o).Data() + " Z"
}

// Clamp01 явно приводит скаляр к [0,1]. Генераторы геометрии косметические:
// искажённое значение сверху не должно ронять иллюстрацию.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ftoa печатает координату без хвостовых нулей ("100", "91.25").
func ftoa(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
