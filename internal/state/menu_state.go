// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-angioplasty/internal/app"
	"go-angioplasty/internal/assets"
	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
)

// MenuState — стартовый экран
type MenuState struct {
	sm      *StateMachine
	lesson  *app.Lesson
	fonts   *assets.Fonts
	palette defs.Palette
}

func NewMenuState(sm *StateMachine, lesson *app.Lesson, fonts *assets.Fonts, palette defs.Palette) *MenuState {
	return &MenuState{sm: sm, lesson: lesson, fonts: fonts, palette: palette}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewLessonState(m.sm, m.lesson, m.fonts, m.palette))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "Coronary Angioplasty"
	tb := text.BoundString(m.fonts.Title, title)
	text.Draw(screen, title, m.fonts.Title,
		(config.ScreenWidth-tb.Dx())/2, config.ScreenHeight/2-20, config.TextLightColor)

	hint := "press space to start the lesson"
	hb := text.BoundString(m.fonts.Label, hint)
	text.Draw(screen, hint, m.fonts.Label,
		(config.ScreenWidth-hb.Dx())/2, config.ScreenHeight/2+16, config.TextDimColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
