// internal/app/lesson_test.go
package app

import (
	"testing"

	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/event"
)

func TestLesson_AdvanceWalksSequence(t *testing.T) {
	lesson := NewLesson(1)
	if lesson.Stage() != defs.StageSequence[0] {
		t.Fatalf("expected start on %s, got %s", defs.StageSequence[0], lesson.Stage())
	}
	for i := 1; i < len(defs.StageSequence); i++ {
		lesson.Advance()
		if lesson.Stage() != defs.StageSequence[i] {
			t.Fatalf("step %d: expected %s, got %s", i, defs.StageSequence[i], lesson.Stage())
		}
		if lesson.Params() != defs.Resolve(defs.StageSequence[i]) {
			t.Errorf("step %d: params out of sync with stage", i)
		}
	}
	// На последней стадии Advance останавливается
	lesson.Advance()
	if lesson.Stage() != defs.StageRestored {
		t.Errorf("expected to stay on %s, got %s", defs.StageRestored, lesson.Stage())
	}
}

func TestLesson_BackClampsAtStart(t *testing.T) {
	lesson := NewLesson(1)
	lesson.Back()
	if lesson.Stage() != defs.StageHealthy {
		t.Errorf("expected to stay on %s, got %s", defs.StageHealthy, lesson.Stage())
	}
	lesson.Advance()
	lesson.Advance()
	lesson.Back()
	if lesson.Stage() != defs.StageAtherosclerosis {
		t.Errorf("expected %s, got %s", defs.StageAtherosclerosis, lesson.Stage())
	}
}

func TestLesson_Restart(t *testing.T) {
	lesson := NewLesson(1)
	lesson.SetStage(defs.StageNecrosis)
	lesson.Restart()
	if lesson.Stage() != defs.StageHealthy {
		t.Errorf("expected %s after restart, got %s", defs.StageHealthy, lesson.Stage())
	}
	if lesson.StageIndex() != 0 {
		t.Errorf("expected index 0, got %d", lesson.StageIndex())
	}
}

// Поле клеток создаётся один раз на урок и переживает любые смены стадии.
func TestLesson_FieldSurvivesStageChanges(t *testing.T) {
	lesson := NewLesson(7)
	field := lesson.Field()
	before := make([]float64, 0, field.Len())
	for _, cell := range field.Cells() {
		before = append(before, cell.Y)
	}

	for _, stage := range defs.StageSequence {
		lesson.SetStage(stage)
	}
	lesson.Restart()

	if lesson.Field() != field {
		t.Fatal("blood field replaced during stage changes")
	}
	for i, cell := range lesson.Field().Cells() {
		if cell.Y != before[i] {
			t.Errorf("cell %d mutated: y %v -> %v", i, before[i], cell.Y)
		}
	}
}

func TestLesson_IgnoresUnknownStage(t *testing.T) {
	lesson := NewLesson(1)
	lesson.SetStage(defs.StageBalloon)
	lesson.SetStage(defs.Stage("ANGIOGRAM"))
	if lesson.Stage() != defs.StageBalloon {
		t.Errorf("unknown stage must be ignored, got %s", lesson.Stage())
	}
}

func TestLesson_StageChangedEvents(t *testing.T) {
	lesson := NewLesson(1)
	var got []event.StageChangedData
	lesson.EventDispatcher.Subscribe(event.StageChanged, event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(event.StageChangedData))
	}))

	lesson.Advance()
	lesson.Advance()
	lesson.SetStage(lesson.Stage()) // no-op, события нет
	lesson.Back()

	want := []event.StageChangedData{
		{From: defs.StageHealthy, To: defs.StageAtherosclerosis, Params: defs.Resolve(defs.StageAtherosclerosis)},
		{From: defs.StageAtherosclerosis, To: defs.StageRuptureThrombosis, Params: defs.Resolve(defs.StageRuptureThrombosis)},
		{From: defs.StageRuptureThrombosis, To: defs.StageAtherosclerosis, Params: defs.Resolve(defs.StageAtherosclerosis)},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLesson_AutoPlay(t *testing.T) {
	lesson := NewLesson(1)

	// Без автопроигрывания Update стадию не трогает
	lesson.Update(config.AutoPlayInterval * 3)
	if lesson.Stage() != defs.StageHealthy {
		t.Fatalf("update without autoplay changed stage to %s", lesson.Stage())
	}

	lesson.ToggleAutoPlay()
	if !lesson.AutoPlay() {
		t.Fatal("expected autoplay enabled")
	}

	lesson.Update(config.AutoPlayInterval - 0.01)
	if lesson.Stage() != defs.StageHealthy {
		t.Errorf("advanced before interval elapsed: %s", lesson.Stage())
	}
	lesson.Update(0.02)
	if lesson.Stage() != defs.StageAtherosclerosis {
		t.Errorf("expected %s after interval, got %s", defs.StageAtherosclerosis, lesson.Stage())
	}

	// С последней стадии автопроигрывание заворачивает урок на начало
	lesson.SetStage(defs.StageRestored)
	lesson.Update(config.AutoPlayInterval + 0.01)
	if lesson.Stage() != defs.StageHealthy {
		t.Errorf("expected wrap to %s, got %s", defs.StageHealthy, lesson.Stage())
	}
}

func TestLesson_ToggleAutoPlayEvent(t *testing.T) {
	lesson := NewLesson(1)
	var states []bool
	lesson.EventDispatcher.Subscribe(event.AutoPlayToggled, event.ListenerFunc(func(e event.Event) {
		states = append(states, e.Data.(event.AutoPlayToggledData).Enabled)
	}))

	lesson.ToggleAutoPlay()
	lesson.ToggleAutoPlay()
	if len(states) != 2 || states[0] != true || states[1] != false {
		t.Errorf("expected [true false], got %v", states)
	}
}
