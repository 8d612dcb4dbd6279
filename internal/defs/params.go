// internal/defs/params.go
package defs

import "fmt"

// FlowStopped — сентинельное значение FlowSpeed: кровоток остановлен.
// Это не длительность анимации, а явный маркер для презентационного слоя.
const FlowStopped = 100.0

// WireAdvanced — полностью введённый проводник, в единицах канвы.
const WireAdvanced = 400.0

// VisualParameters — полная визуальная запись одной стадии. Все поля
// обязательны, частичных записей не бывает.
type VisualParameters struct {
	PlaqueCompression float64      // 0 — нет бляшки .. 1 — полная
	ClotOpacity       float64      // 0..1
	WireProgress      float64      // 0 — убран .. 400 — введён
	BalloonInflation  float64      // 0 — отсутствует .. 1 — раздут
	StentExpansion    float64      // 0 — обжат .. 1 — раскрыт
	FlowSpeed         float64      // секунды; меньше — быстрее; 100 — стоп
	MuscleColor       PaletteToken // токен палитры ткани миокарда
	IsMuscleDying     bool         // только для ишемии/некроза
}

// Resolve — таблица стадия → параметры. Тотальная чистая функция: каждая
// стадия перечисления даёт ровно одну полностью заполненную запись.
// Неизвестная стадия — ошибка программирования, резолвер не имеет
// запасной записи и падает сразу, чтобы не отрисовать клиническую
// картину молча и неверно.
func Resolve(stage Stage) VisualParameters {
	switch stage {
	case StageHealthy:
		return VisualParameters{
			PlaqueCompression: 0,
			ClotOpacity:       0,
			WireProgress:      0,
			BalloonInflation:  0,
			StentExpansion:    0,
			FlowSpeed:         2,
			MuscleColor:       MusclePinkTissue,
			IsMuscleDying:     false,
		}
	case StageAtherosclerosis:
		return VisualParameters{
			PlaqueCompression: 0.75,
			ClotOpacity:       0,
			WireProgress:      0,
			BalloonInflation:  0,
			StentExpansion:    0,
			FlowSpeed:         2.5,
			MuscleColor:       MusclePinkTissue,
			IsMuscleDying:     false,
		}
	case StageRuptureThrombosis:
		return VisualParameters{
			PlaqueCompression: 0.75,
			ClotOpacity:       1,
			WireProgress:      0,
			BalloonInflation:  0,
			StentExpansion:    0,
			FlowSpeed:         FlowStopped,
			MuscleColor:       MuscleIschemicPurple,
			IsMuscleDying:     true,
		}
	case StageNecrosis:
		return VisualParameters{
			PlaqueCompression: 0.75,
			ClotOpacity:       1,
			WireProgress:      0,
			BalloonInflation:  0,
			StentExpansion:    0,
			FlowSpeed:         FlowStopped,
			MuscleColor:       MuscleNecroticDark,
			IsMuscleDying:     true,
		}
	case StageGuidewire:
		return VisualParameters{
			PlaqueCompression: 0.75,
			ClotOpacity:       0.8,
			WireProgress:      WireAdvanced,
			BalloonInflation:  0,
			StentExpansion:    0,
			FlowSpeed:         FlowStopped,
			MuscleColor:       MuscleIntervenedGray1,
			IsMuscleDying:     false,
		}
	case StageBalloon:
		return VisualParameters{
			PlaqueCompression: 0.25,
			ClotOpacity:       0.2,
			WireProgress:      WireAdvanced,
			BalloonInflation:  1,
			StentExpansion:    0,
			FlowSpeed:         FlowStopped,
			MuscleColor:       MuscleIntervenedGray2,
			IsMuscleDying:     false,
		}
	case StageStentDeploy:
		return VisualParameters{
			PlaqueCompression: 0.25,
			ClotOpacity:       0,
			WireProgress:      WireAdvanced,
			BalloonInflation:  1,
			StentExpansion:    1,
			FlowSpeed:         FlowStopped,
			MuscleColor:       MuscleIntervenedGray3,
			IsMuscleDying:     false,
		}
	case StageRestored:
		return VisualParameters{
			PlaqueCompression: 0.25,
			ClotOpacity:       0,
			WireProgress:      0,
			BalloonInflation:  0,
			StentExpansion:    1,
			FlowSpeed:         2,
			MuscleColor:       MuscleIntervenedGray4,
			IsMuscleDying:     false,
		}
	default:
		panic(fmt.Sprintf("defs: unknown stage %q", string(stage)))
	}
}

// FlowStoppedAt сообщает, остановлен ли кровоток на стадии.
func FlowStoppedAt(stage Stage) bool {
	return Resolve(stage).FlowSpeed >= FlowStopped
}
