// internal/defs/stages.go
package defs

// Stage — стадия клинического сценария. Закрытое перечисление: ядро не
// навязывает порядок переходов, любая стадия может следовать за любой.
type Stage string

const (
	StageHealthy           Stage = "HEALTHY"
	StageAtherosclerosis   Stage = "ATHEROSCLEROSIS"
	StageRuptureThrombosis Stage = "RUPTURE_THROMBOSIS"
	StageNecrosis          Stage = "NECROSIS"
	StageGuidewire         Stage = "GUIDEWIRE"
	StageBalloon           Stage = "BALLOON"
	StageStentDeploy       Stage = "STENT_DEPLOY"
	StageRestored          Stage = "RESTORED"
)

// StageSequence — канонический порядок урока. Используется степпером;
// резолвер параметров от него не зависит.
var StageSequence = []Stage{
	StageHealthy,
	StageAtherosclerosis,
	StageRuptureThrombosis,
	StageNecrosis,
	StageGuidewire,
	StageBalloon,
	StageStentDeploy,
	StageRestored,
}

// StageTitles — подписи стадий для презентационного слоя.
var StageTitles = map[Stage]string{
	StageHealthy:           "Healthy vessel",
	StageAtherosclerosis:   "Plaque buildup",
	StageRuptureThrombosis: "Rupture and thrombosis",
	StageNecrosis:          "Tissue necrosis",
	StageGuidewire:         "Guidewire insertion",
	StageBalloon:           "Balloon dilation",
	StageStentDeploy:       "Stent deployment",
	StageRestored:          "Flow restored",
}

// Valid сообщает, входит ли значение в перечисление.
func (s Stage) Valid() bool {
	switch s {
	case StageHealthy, StageAtherosclerosis, StageRuptureThrombosis,
		StageNecrosis, StageGuidewire, StageBalloon, StageStentDeploy,
		StageRestored:
		return true
	}
	return false
}

// StageIndex возвращает позицию стадии в каноническом порядке урока,
// либо -1, если стадия неизвестна.
func StageIndex(s Stage) int {
	for i, st := range StageSequence {
		if st == s {
			return i
		}
	}
	return -1
}
