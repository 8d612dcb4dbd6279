// internal/ui/stage_indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
)

// StageIndicator — ряд точек по числу стадий урока; текущая подсвечена.
// Клик по точке — переход на её стадию.
type StageIndicator struct {
	X, Y          float32 // центр первой точки
	Radius        float32
	Spacing       float32
	LastClickTime time.Time
}

// NewStageIndicator создаёт индикатор стадий.
func NewStageIndicator(x, y, radius, spacing float32) *StageIndicator {
	return &StageIndicator{
		X:       x,
		Y:       y,
		Radius:  radius,
		Spacing: spacing,
	}
}

// Draw отрисовывает индикатор; current — индекс текущей стадии.
func (i *StageIndicator) Draw(screen *ebiten.Image, current int) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)

	for n := range defs.StageSequence {
		cx := i.X + float32(n)*i.Spacing
		r := i.Radius
		var fill color.RGBA
		if n == current {
			r = i.Radius * float32(scale)
			fill = config.UIAccentColor
		} else {
			fill = config.TextDimColor
		}
		vector.DrawFilledCircle(screen, cx, i.Y, r, fill, true)
		if n == current {
			vector.StrokeCircle(screen, cx, i.Y, r+2, 1.5, config.UIBorderColor, true)
		}
	}
}

// HitStage возвращает индекс точки под курсором, либо -1.
func (i *StageIndicator) HitStage(x, y int) int {
	for n := range defs.StageSequence {
		cx := float64(i.X + float32(n)*i.Spacing)
		dx := float64(x) - cx
		dy := float64(y) - float64(i.Y)
		if dx*dx+dy*dy <= float64(i.Radius+3)*float64(i.Radius+3) {
			return n
		}
	}
	return -1
}

// HandleClick фиксирует клик для анимации пульса.
func (i *StageIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
