// internal/ui/caption.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
)

// Caption — подпись текущей стадии и строка состояния внизу экрана.
type Caption struct {
	titleFace font.Face
	labelFace font.Face
}

// NewCaption создаёт подпись с начертаниями вьюера.
func NewCaption(titleFace, labelFace font.Face) *Caption {
	return &Caption{titleFace: titleFace, labelFace: labelFace}
}

// Draw отрисовывает заголовок стадии по центру и строку состояния.
func (c *Caption) Draw(screen *ebiten.Image, stage defs.Stage, autoPlay bool) {
	title := defs.StageTitles[stage]
	bounds := text.BoundString(c.titleFace, title)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, title, c.titleFace, x, 36, config.TextLightColor)

	status := "arrows: step   space: auto-play   r: restart"
	if autoPlay {
		status = "auto-play on   space: stop   r: restart"
	}
	text.Draw(screen, status, c.labelFace, 16, config.ScreenHeight-14, config.TextDimColor)

	if defs.FlowStoppedAt(stage) {
		alert := "Blood flow stopped"
		ab := text.BoundString(c.labelFace, alert)
		text.Draw(screen, alert, c.labelFace, (config.ScreenWidth-ab.Dx())/2, 58, config.TextLightColor)
	}
}
