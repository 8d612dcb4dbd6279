// internal/component/layer.go
package component

import (
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/geometry"
)

// LayerID — слой иллюстрации. Порядок объявления и есть z-порядок,
// сзади вперёд: инструменты всегда рисуются поверх крови и тромба,
// чтобы зритель однозначно отслеживал их положение.
type LayerID int

const (
	LayerMuscle LayerID = iota // фоновая ткань миокарда
	LayerWall                  // стенки артерии, статичные
	LayerPlaque                // два зеркальных нароста бляшки
	LayerBloodCells            // клетки крови в просвете
	LayerThrombus              // тромб
	LayerGuidewire             // проводник
	LayerBalloon               // баллон
	LayerStent                 // сетка стента
)

// LayerCount — число слоёв в кадре.
const LayerCount = 8

// String — имя слоя для экспорта и логов.
func (id LayerID) String() string {
	switch id {
	case LayerMuscle:
		return "muscle"
	case LayerWall:
		return "wall"
	case LayerPlaque:
		return "plaque"
	case LayerBloodCells:
		return "blood-cells"
	case LayerThrombus:
		return "thrombus"
	case LayerGuidewire:
		return "guidewire"
	case LayerBalloon:
		return "balloon"
	case LayerStent:
		return "stent"
	}
	return "unknown"
}

// CellSprite — клетка крови с аннотациями видимости и длительности
// анимации для текущей стадии.
type CellSprite struct {
	Cell         BloodCell
	Visible      bool
	FlowDuration float64 // секунды; >= defs.FlowStopped — поток стоит
}

// Layer — один слой собранного кадра. Заполнены только поля,
// относящиеся к конкретному слою.
type Layer struct {
	ID      LayerID
	Visible bool

	Color   defs.PaletteToken // LayerMuscle
	Dying   bool              // LayerMuscle: ишемия/некроз
	Scale   float64           // LayerPlaque: сжатие бляшки
	Opacity float64           // LayerThrombus
	WireEnd float64           // LayerGuidewire: x конца проводника

	Cells   []CellSprite        // LayerBloodCells
	Balloon geometry.Outline    // LayerBalloon
	Stent   *geometry.StentMesh // LayerStent
}
