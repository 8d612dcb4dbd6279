// internal/ui/step_button.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-angioplasty/internal/config"
)

// StepButton — стрелка перехода на соседнюю стадию. Direction -1 — назад,
// +1 — вперёд.
type StepButton struct {
	X, Y          float32
	Size          float32
	Direction     int
	LastClickTime time.Time
}

// NewStepButton создаёт кнопку-стрелку.
func NewStepButton(x, y, size float32, direction int) *StepButton {
	return &StepButton{
		X:         x,
		Y:         y,
		Size:      size,
		Direction: direction,
	}
}

// Draw отрисовывает шеврон с пульсом после клика.
func (b *StepButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	dir := float32(b.Direction)
	tipX := b.X + dir*size/2
	backX := b.X - dir*size/2

	vector.StrokeLine(screen, backX, b.Y-size, tipX, b.Y, 3, config.UIBorderColor, true)
	vector.StrokeLine(screen, backX, b.Y+size, tipX, b.Y, 3, config.UIBorderColor, true)
}

// IsClicked проверяет попадание клика в кнопку.
func (b *StepButton) IsClicked(x, y int) bool {
	dx := float64(x) - float64(b.X)
	dy := float64(y) - float64(b.Y)
	hit := float64(b.Size) * 1.5
	return dx*dx+dy*dy <= hit*hit
}

// HandleClick фиксирует клик для анимации пульса.
func (b *StepButton) HandleClick() {
	b.LastClickTime = time.Now()
}
