// internal/system/compositor.go
package system

import (
	"go-angioplasty/internal/component"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/geometry"
)

// Compositor собирает кадр: упорядоченный список слоёв для отрисовки,
// сзади вперёд. Геометрией сам не владеет — только вызывает генераторы
// и расставляет видимость и z-порядок.
type Compositor struct{}

// NewCompositor создаёт композитор кадра.
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Compose строит кадр стадии из её параметров и поля клеток. Возвращает
// ровно 8 слоёв в фиксированном z-порядке component.LayerID.
func (c *Compositor) Compose(stage defs.Stage, params defs.VisualParameters, field *component.BloodField) []component.Layer {
	balloon := geometry.BalloonOutline(params.BalloonInflation)
	stent := geometry.StentPaths(params.StentExpansion)

	cells := make([]component.CellSprite, 0, field.Len())
	for _, cell := range field.Cells() {
		cells = append(cells, component.CellSprite{
			Cell:         cell,
			Visible:      CellVisible(cell, stage),
			FlowDuration: CellFlowDuration(cell, params),
		})
	}

	// Бляшка подавляется на HEALTHY явно, хотя таблица и так даёт там 0:
	// зависимость от стадии зафиксирована, а не выведена из скаляра.
	plaqueScale := params.PlaqueCompression
	if stage == defs.StageHealthy {
		plaqueScale = 0
	}

	// Стент остаётся видимым на STENT_DEPLOY даже в момент, когда
	// раскрытие ещё не ушло с нуля, — косметическое исключение перехода,
	// привязанное к стадии, а не к порогу скаляра.
	stentVisible := params.StentExpansion > 0 || stage == defs.StageStentDeploy

	return []component.Layer{
		{
			ID:      component.LayerMuscle,
			Visible: true,
			Color:   params.MuscleColor,
			Dying:   params.IsMuscleDying,
		},
		{
			ID:      component.LayerWall,
			Visible: true,
		},
		{
			ID:      component.LayerPlaque,
			Visible: plaqueScale > 0,
			Scale:   plaqueScale,
		},
		{
			ID:      component.LayerBloodCells,
			Visible: true,
			Cells:   cells,
		},
		{
			ID:      component.LayerThrombus,
			Visible: params.ClotOpacity > 0,
			Opacity: params.ClotOpacity,
		},
		{
			ID:      component.LayerGuidewire,
			Visible: params.WireProgress > 0,
			WireEnd: params.WireProgress,
		},
		{
			ID:      component.LayerBalloon,
			Visible: !balloon.Empty(),
			Balloon: balloon,
		},
		{
			ID:      component.LayerStent,
			Visible: stentVisible,
			Stent:   &stent,
		},
	}
}
