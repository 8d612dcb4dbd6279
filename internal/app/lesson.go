// internal/app/lesson.go
package app

import (
	"log"

	"go-angioplasty/internal/component"
	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/event"
	"go-angioplasty/internal/system"
	"go-angioplasty/internal/utils"
)

// Lesson — контроллер урока. Владеет полем клеток, текущей стадией и её
// параметрами; само ядро стадию не меняет — смена приходит снаружи
// (клавиши вьюера, веб-клиент, автопроигрывание).
type Lesson struct {
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	field      *component.BloodField
	compositor *system.Compositor

	stage  defs.Stage
	params defs.VisualParameters

	autoPlay  bool
	playTimer float64
}

// NewLesson создаёт урок на первой стадии канонической последовательности.
// Сид 0 означает рандом от времени; тесты передают фиксированный.
func NewLesson(seed int64) *Lesson {
	rng := utils.NewPRNGService(seed)
	start := defs.StageSequence[0]
	return &Lesson{
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		field:           component.NewBloodField(config.BloodCellCount, rng),
		compositor:      system.NewCompositor(),
		stage:           start,
		params:          defs.Resolve(start),
	}
}

// Stage — текущая стадия.
func (l *Lesson) Stage() defs.Stage {
	return l.stage
}

// StageIndex — позиция текущей стадии в каноническом порядке.
func (l *Lesson) StageIndex() int {
	return defs.StageIndex(l.stage)
}

// Params — параметры текущей стадии.
func (l *Lesson) Params() defs.VisualParameters {
	return l.params
}

// Field — поле клеток крови. Живёт дольше смен стадий.
func (l *Lesson) Field() *component.BloodField {
	return l.field
}

// Frame собирает кадр текущей стадии.
func (l *Lesson) Frame() []component.Layer {
	return l.compositor.Compose(l.stage, l.params, l.field)
}

// FrameFor собирает кадр произвольной стадии, не меняя текущую. Поле
// клеток то же самое: просмотр любой стадии не сбрасывает поток.
func (l *Lesson) FrameFor(stage defs.Stage) []component.Layer {
	return l.compositor.Compose(stage, defs.Resolve(stage), l.field)
}

// SetStage переводит урок на стадию. Неизвестная стадия игнорируется с
// логом: это внешний ввод, а не нарушение контракта резолвера.
func (l *Lesson) SetStage(stage defs.Stage) {
	if !stage.Valid() {
		log.Printf("lesson: ignoring unknown stage %q", string(stage))
		return
	}
	if stage == l.stage {
		return
	}
	from := l.stage
	l.stage = stage
	l.params = defs.Resolve(stage)
	l.playTimer = 0
	l.EventDispatcher.Dispatch(event.Event{
		Type: event.StageChanged,
		Data: event.StageChangedData{From: from, To: stage, Params: l.params},
	})
}

// Advance переходит к следующей стадии урока; на последней остаётся.
func (l *Lesson) Advance() {
	i := defs.StageIndex(l.stage)
	if i < 0 || i+1 >= len(defs.StageSequence) {
		return
	}
	l.SetStage(defs.StageSequence[i+1])
}

// Back возвращается на предыдущую стадию; на первой остаётся.
func (l *Lesson) Back() {
	i := defs.StageIndex(l.stage)
	if i <= 0 {
		return
	}
	l.SetStage(defs.StageSequence[i-1])
}

// Restart сбрасывает урок на первую стадию. Поле клеток сохраняется.
func (l *Lesson) Restart() {
	l.SetStage(defs.StageSequence[0])
	l.playTimer = 0
	l.EventDispatcher.Dispatch(event.Event{Type: event.LessonRestarted})
}

// AutoPlay — включено ли автопроигрывание.
func (l *Lesson) AutoPlay() bool {
	return l.autoPlay
}

// ToggleAutoPlay переключает автопроигрывание урока.
func (l *Lesson) ToggleAutoPlay() {
	l.autoPlay = !l.autoPlay
	l.playTimer = 0
	l.EventDispatcher.Dispatch(event.Event{
		Type: event.AutoPlayToggled,
		Data: event.AutoPlayToggledData{Enabled: l.autoPlay},
	})
}

// Update тикает таймер автопроигрывания. Без автопроигрывания — no-op:
// ядро не решает, когда менять стадию.
func (l *Lesson) Update(deltaTime float64) {
	if !l.autoPlay {
		return
	}
	l.playTimer += deltaTime
	if l.playTimer < config.AutoPlayInterval {
		return
	}
	l.playTimer = 0
	if defs.StageIndex(l.stage)+1 >= len(defs.StageSequence) {
		l.Restart()
		return
	}
	l.Advance()
}
