// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

// paletteEntry — одна запись файла палитры.
type paletteEntry struct {
	Token string `json:"token"`
	R     uint8  `json:"r"`
	G     uint8  `json:"g"`
	B     uint8  `json:"b"`
	A     uint8  `json:"a"`
}

// LoadPalette читает JSON-файл с переопределениями палитры и накладывает
// его поверх палитры по умолчанию. Файл может переопределять любое
// подмножество токенов; итоговая палитра всегда остаётся полной.
func LoadPalette(path string) (Palette, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var entries []paletteEntry
	if err := json.Unmarshal(file, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal palette: %w", err)
	}

	palette := DefaultPalette()
	for _, e := range entries {
		token := PaletteToken(e.Token)
		if _, known := palette[token]; !known {
			return nil, fmt.Errorf("unknown palette token %q", e.Token)
		}
		palette[token] = color.RGBA{R: e.R, G: e.G, B: e.B, A: e.A}
	}
	return palette, nil
}
