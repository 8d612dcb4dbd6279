// internal/state/lesson_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-angioplasty/internal/app"
	"go-angioplasty/internal/assets"
	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/system"
	"go-angioplasty/internal/ui"
	"go-angioplasty/internal/utils"
)

// Скорость продвижения проводника при твининге, единиц канвы в секунду.
const wireTweenRate = 320.0

// LessonState — основное состояние вьюера: степпер стадий и отрисовка
// иллюстрации. Резолвер даёт целевые параметры стадии; твининг к ним —
// презентационная забота этого состояния, ядро значений не интерполирует.
type LessonState struct {
	sm     *StateMachine
	lesson *app.Lesson

	renderSystem *system.RenderSystem
	compositor   *system.Compositor

	indicator *ui.StageIndicator
	prevBtn   *ui.StepButton
	nextBtn   *ui.StepButton
	caption   *ui.Caption

	shown    defs.VisualParameters // текущие (твинящиеся) параметры
	gameTime float64
}

// NewLessonState создаёт состояние урока.
func NewLessonState(sm *StateMachine, lesson *app.Lesson, fonts *assets.Fonts, palette defs.Palette) *LessonState {
	const indicatorSpacing = 28
	indicatorWidth := float32(len(defs.StageSequence)-1) * indicatorSpacing
	return &LessonState{
		sm:           sm,
		lesson:       lesson,
		renderSystem: system.NewRenderSystem(palette),
		compositor:   system.NewCompositor(),
		indicator: ui.NewStageIndicator(
			(config.ScreenWidth-indicatorWidth)/2,
			config.ScreenHeight-40,
			6,
			indicatorSpacing,
		),
		prevBtn: ui.NewStepButton(40, config.ScreenHeight/2, 14, -1),
		nextBtn: ui.NewStepButton(config.ScreenWidth-40, config.ScreenHeight/2, 14, 1),
		caption: ui.NewCaption(fonts.Title, fonts.Label),
		shown:   lesson.Params(),
	}
}

func (s *LessonState) Enter() {
	// Ничего не делаем при входе
}

func (s *LessonState) Update(deltaTime float64) {
	s.gameTime += deltaTime

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		s.lesson.Advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		s.lesson.Back()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.lesson.ToggleAutoPlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.lesson.Restart()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.handleClick(x, y)
	}

	s.lesson.Update(deltaTime)
	s.tween(deltaTime)
}

func (s *LessonState) handleClick(x, y int) {
	if s.prevBtn.IsClicked(x, y) {
		s.prevBtn.HandleClick()
		s.lesson.Back()
		return
	}
	if s.nextBtn.IsClicked(x, y) {
		s.nextBtn.HandleClick()
		s.lesson.Advance()
		return
	}
	if n := s.indicator.HitStage(x, y); n >= 0 {
		s.indicator.HandleClick()
		s.lesson.SetStage(defs.StageSequence[n])
	}
}

// tween подтягивает показанные параметры к целевым значениям стадии.
// Скаляры движутся с постоянной скоростью; цвет ткани, флаг некроза и
// сентинель потока переключаются мгновенно.
func (s *LessonState) tween(deltaTime float64) {
	target := s.lesson.Params()
	step := config.TweenRate * deltaTime

	s.shown.PlaqueCompression = utils.MoveToward(s.shown.PlaqueCompression, target.PlaqueCompression, step)
	s.shown.ClotOpacity = utils.MoveToward(s.shown.ClotOpacity, target.ClotOpacity, step)
	s.shown.BalloonInflation = utils.MoveToward(s.shown.BalloonInflation, target.BalloonInflation, step)
	s.shown.StentExpansion = utils.MoveToward(s.shown.StentExpansion, target.StentExpansion, step)
	s.shown.WireProgress = utils.MoveToward(s.shown.WireProgress, target.WireProgress, wireTweenRate*deltaTime)

	s.shown.FlowSpeed = target.FlowSpeed
	s.shown.MuscleColor = target.MuscleColor
	s.shown.IsMuscleDying = target.IsMuscleDying
}

func (s *LessonState) Draw(screen *ebiten.Image) {
	layers := s.compositor.Compose(s.lesson.Stage(), s.shown, s.lesson.Field())
	s.renderSystem.Draw(screen, layers, s.gameTime)

	s.indicator.Draw(screen, s.lesson.StageIndex())
	s.prevBtn.Draw(screen)
	s.nextBtn.Draw(screen)
	s.caption.Draw(screen, s.lesson.Stage(), s.lesson.AutoPlay())
}

func (s *LessonState) Exit() {
	// Ничего не делаем при выходе
}
