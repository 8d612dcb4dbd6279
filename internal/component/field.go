// internal/component/field.go
package component

import (
	"go-angioplasty/internal/config"
	"go-angioplasty/internal/utils"
)

// BloodField — поле клеток крови. Генерируется ровно один раз на жизнь
// компонента и не пересоздаётся при смене стадии: перегенерация визуально
// «сбросила» бы поток и сломала иллюзию непрерывного кровотока.
type BloodField struct {
	cells []BloodCell
}

// NewBloodField генерирует count клеток из переданного источника
// случайности. При count <= 0 берётся количество по умолчанию (25).
// Координата Y держится внутри просвета [70,130], в стороне от стенок.
func NewBloodField(count int, rng *utils.PRNGService) *BloodField {
	if count <= 0 {
		count = config.BloodCellCount
	}
	cells := make([]BloodCell, count)
	for i := range cells {
		cells[i] = BloodCell{
			ID:            i,
			Y:             rng.FloatRange(config.BloodCellMinY, config.BloodCellMaxY),
			PhaseDelay:    rng.FloatRange(0, config.BloodCellMaxPhase),
			Size:          rng.FloatRange(config.BloodCellMinSize, config.BloodCellMaxSize),
			SpeedVariance: rng.FloatRange(config.BloodCellMinVariance, config.BloodCellMaxVariance),
		}
	}
	return &BloodField{cells: cells}
}

// Cells возвращает клетки поля в порядке генерации. Слайс принадлежит
// полю; вызывающие не должны его изменять.
func (f *BloodField) Cells() []BloodCell {
	return f.cells
}

// Len — количество клеток в поле.
func (f *BloodField) Len() int {
	return len(f.cells)
}
