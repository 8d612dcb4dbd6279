// internal/geometry/stent.go
package geometry

import "go-angioplasty/internal/config"

// StentMesh — сетка стента: продольные зигзагообразные распорки и
// диагональные перемычки, две независимые группы путей. Рисуются
// отдельными штриховыми слоями с разной толщиной.
type StentMesh struct {
	Expansion   float64
	Radius      float64    // 6 при обжатом, 50 при раскрытом
	Struts      []Polyline // верхняя и нижняя кромки, по две на сегмент
	CrossStruts []Polyline // V-образные перемычки, только при раскрытии
}

// StentPaths строит сетку стента для степени раскрытия expansion.
// Стент занимает фиксированные 70 единиц вдоль сосуда, разбитые на 8
// равных сегментов. Вершины зигзага смещены внутрь на 5×expansion в
// середине сегмента: обжатый профиль плоский, раскрытый — волнистый.
// Перемычки появляются только при expansion > 0.1 — ниже сетка слишком
// сжата, чтобы различить ромбы.
func StentPaths(expansion float64) StentMesh {
	expansion = Clamp01(expansion)

	const (
		cy       = config.LumenCenterY
		left     = config.StentCenterX - config.StentLength/2
		segments = config.StentSegments
		segLen   = config.StentLength / segments
	)
	radius := config.StentBaseRadius + config.StentRadiusRange*expansion
	dip := config.StentZigzagDepth * expansion

	topY := cy - radius
	botY := cy + radius

	mesh := StentMesh{
		Expansion: expansion,
		Radius:    radius,
		Struts:    make([]Polyline, 0, segments*2),
	}
	withCross := expansion > config.StentCrossThreshold
	if withCross {
		mesh.CrossStruts = make([]Polyline, 0, segments*2)
	}

	for i := 0; i < segments; i++ {
		x0 := left + float64(i)*segLen
		xm := x0 + segLen/2
		x1 := x0 + segLen

		mesh.Struts = append(mesh.Struts,
			Polyline{{x0, topY}, {xm, topY + dip}, {x1, topY}},
			Polyline{{x0, botY}, {xm, botY - dip}, {x1, botY}},
		)
		if withCross {
			mesh.CrossStruts = append(mesh.CrossStruts,
				Polyline{{x0, topY}, {xm, cy}, {x1, topY}},
				Polyline{{x0, botY}, {xm, cy}, {x1, botY}},
			)
		}
	}
	return mesh
}

// StrutWidth — толщина штриха распорок: толще в обжатом состоянии,
// тоньше в раскрытом (материал визуально утончается под нагрузкой).
func (m StentMesh) StrutWidth() float64 {
	return 2.5 - 1.0*m.Expansion
}

// CrossWidth — толщина штриха перемычек.
func (m StentMesh) CrossWidth() float64 {
	return 1.5 - 0.7*m.Expansion
}
