// internal/defs/params_test.go
package defs

import "testing"

// Золотая таблица: точные значения всех полей для всех восьми стадий.
func TestResolve_GoldenTable(t *testing.T) {
	tests := []struct {
		stage Stage
		want  VisualParameters
	}{
		{StageHealthy, VisualParameters{0, 0, 0, 0, 0, 2, MusclePinkTissue, false}},
		{StageAtherosclerosis, VisualParameters{0.75, 0, 0, 0, 0, 2.5, MusclePinkTissue, false}},
		{StageRuptureThrombosis, VisualParameters{0.75, 1, 0, 0, 0, 100, MuscleIschemicPurple, true}},
		{StageNecrosis, VisualParameters{0.75, 1, 0, 0, 0, 100, MuscleNecroticDark, true}},
		{StageGuidewire, VisualParameters{0.75, 0.8, 400, 0, 0, 100, MuscleIntervenedGray1, false}},
		{StageBalloon, VisualParameters{0.25, 0.2, 400, 1, 0, 100, MuscleIntervenedGray2, false}},
		{StageStentDeploy, VisualParameters{0.25, 0, 400, 1, 1, 100, MuscleIntervenedGray3, false}},
		{StageRestored, VisualParameters{0.25, 0, 0, 0, 1, 2, MuscleIntervenedGray4, false}},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			got := Resolve(tt.stage)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

// Резолвер тотален: каждая стадия перечисления даёт свою запись, и записи
// попарно различны.
func TestResolve_TotalAndDistinct(t *testing.T) {
	seen := make(map[VisualParameters]Stage)
	for _, stage := range StageSequence {
		got := Resolve(stage)
		if prev, dup := seen[got]; dup {
			t.Errorf("stages %s and %s resolve to identical parameters", prev, stage)
		}
		seen[got] = stage
	}
	if len(seen) != len(StageSequence) {
		t.Errorf("expected %d distinct records, got %d", len(StageSequence), len(seen))
	}
}

func TestResolve_Idempotent(t *testing.T) {
	for _, stage := range StageSequence {
		a := Resolve(stage)
		b := Resolve(stage)
		if a != b {
			t.Errorf("%s: repeated resolve differs: %+v vs %+v", stage, a, b)
		}
	}
}

// Неизвестная стадия — нарушение контракта, резолвер обязан упасть, а не
// вернуть запись по умолчанию.
func TestResolve_PanicsOnUnknownStage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown stage")
		}
	}()
	Resolve(Stage("ANGIOGRAM"))
}

func TestFlowStoppedAt(t *testing.T) {
	stopped := map[Stage]bool{
		StageHealthy:           false,
		StageAtherosclerosis:   false,
		StageRuptureThrombosis: true,
		StageNecrosis:          true,
		StageGuidewire:         true,
		StageBalloon:           true,
		StageStentDeploy:       true,
		StageRestored:          false,
	}
	for stage, want := range stopped {
		if got := FlowStoppedAt(stage); got != want {
			t.Errorf("%s: expected stopped=%v, got %v", stage, want, got)
		}
	}
}
