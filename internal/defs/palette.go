// internal/defs/palette.go
package defs

import "image/color"

// PaletteToken — семантический ключ цвета ткани. Ядро оперирует токенами,
// а не закодированными цветами: презентационный слой может переназначить
// палитру, не трогая логику.
type PaletteToken string

const (
	MusclePinkTissue      PaletteToken = "pink-tissue"
	MuscleIschemicPurple  PaletteToken = "ischemic-purple"
	MuscleNecroticDark    PaletteToken = "necrotic-dark"
	MuscleIntervenedGray1 PaletteToken = "intervened-gray-1"
	MuscleIntervenedGray2 PaletteToken = "intervened-gray-2"
	MuscleIntervenedGray3 PaletteToken = "intervened-gray-3"
	MuscleIntervenedGray4 PaletteToken = "intervened-gray-4"
)

// AllPaletteTokens перечисляет все токены тканевой палитры.
var AllPaletteTokens = []PaletteToken{
	MusclePinkTissue,
	MuscleIschemicPurple,
	MuscleNecroticDark,
	MuscleIntervenedGray1,
	MuscleIntervenedGray2,
	MuscleIntervenedGray3,
	MuscleIntervenedGray4,
}

// Palette — отображение токен → цвет.
type Palette map[PaletteToken]color.RGBA

// DefaultPalette возвращает палитру тканей по умолчанию. Серые тона
// вмешательства постепенно теплеют к восстановленному кровотоку.
func DefaultPalette() Palette {
	return Palette{
		MusclePinkTissue:      {235, 170, 170, 255},
		MuscleIschemicPurple:  {130, 90, 150, 255},
		MuscleNecroticDark:    {70, 50, 60, 255},
		MuscleIntervenedGray1: {135, 125, 130, 255},
		MuscleIntervenedGray2: {155, 135, 140, 255},
		MuscleIntervenedGray3: {180, 148, 152, 255},
		MuscleIntervenedGray4: {210, 162, 165, 255},
	}
}

// Color возвращает цвет токена; для неизвестного токена — цвет здоровой
// ткани, чтобы битая палитра не уронила отрисовку.
func (p Palette) Color(token PaletteToken) color.RGBA {
	if c, ok := p[token]; ok {
		return c
	}
	return p[MusclePinkTissue]
}

// Complete проверяет, что палитра покрывает все токены.
func (p Palette) Complete() bool {
	for _, token := range AllPaletteTokens {
		if _, ok := p[token]; !ok {
			return false
		}
	}
	return true
}
