// internal/event/types.go
package event

import "go-angioplasty/internal/defs"

const (
	// StageChanged — урок перешёл на другую стадию
	StageChanged EventType = "stage_changed"
	// LessonRestarted — урок сброшен на первую стадию
	LessonRestarted EventType = "lesson_restarted"
	// AutoPlayToggled — переключено автопроигрывание
	AutoPlayToggled EventType = "auto_play_toggled"
)

// StageChangedData — полезная нагрузка StageChanged
type StageChangedData struct {
	From   defs.Stage
	To     defs.Stage
	Params defs.VisualParameters
}

// AutoPlayToggledData — полезная нагрузка AutoPlayToggled
type AutoPlayToggledData struct {
	Enabled bool
}
