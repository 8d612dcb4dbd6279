// internal/system/visibility.go
package system

import (
	"go-angioplasty/internal/component"
	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
)

// CellVisible сообщает, видна ли клетка на стадии. Клетка скрыта тогда и
// только тогда, когда тромб физически перекрывает центр просвета
// (RUPTURE_THROMBOSIS или NECROSIS) и клетка попадает в полосу окклюзии
// 90 < y < 110. Клетки у стенок остаются номинально видимыми — это
// упрощение, а не модель гидродинамики.
func CellVisible(cell component.BloodCell, stage defs.Stage) bool {
	if stage != defs.StageRuptureThrombosis && stage != defs.StageNecrosis {
		return true
	}
	return cell.Y <= config.ClotBandMinY || cell.Y >= config.ClotBandMaxY
}

// CellFlowDuration — длительность цикла анимации видимой клетки:
// flowSpeed стадии, помноженный на разброс скорости клетки. Сентинель
// defs.FlowStopped пробрасывается без масштабирования: «поток остановлен»
// не зависит от разброса скорости конкретной клетки.
func CellFlowDuration(cell component.BloodCell, params defs.VisualParameters) float64 {
	if params.FlowSpeed >= defs.FlowStopped {
		return defs.FlowStopped
	}
	return params.FlowSpeed * cell.SpeedVariance
}
