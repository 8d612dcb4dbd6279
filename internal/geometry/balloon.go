// internal/geometry/balloon.go
package geometry

import "go-angioplasty/internal/config"

// BalloonOutline строит контур баллонного катетера: замкнутый
// шестиугольник — цилиндр с конусными концами, центрированный в просвете
// сосуда. Полувысота равна 50×inflation; ниже порога 0.05 баллон не
// рисуется вовсе, чтобы не оставлять вырожденную щепку у нуля.
//
// Контур пересчитывается на каждое изменение inflation; сглаживание между
// последовательными значениями — забота презентационного слоя.
func BalloonOutline(inflation float64) Outline {
	inflation = Clamp01(inflation)
	if inflation < config.BalloonMinInflation {
		return nil
	}

	const (
		cx    = config.BalloonCenterX
		cy    = config.LumenCenterY
		half  = config.BalloonWidth / 2
		taper = config.BalloonTaperLength
	)
	r := config.BalloonMaxHalfH * inflation

	left := cx - half
	right := cx + half

	// левый край → верх конуса → верх конуса справа → правый край →
	// низ конуса справа → низ конуса слева → замыкание
	return Outline{
		{left, cy},
		{left + taper, cy - r},
		{right - taper, cy - r},
		{right, cy},
		{right - taper, cy + r},
		{left + taper, cy + r},
	}
}
