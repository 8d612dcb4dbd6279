// cmd/export/svg_file.go
package main

import (
	"fmt"
	"os"

	"go-angioplasty/internal/component"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/export"
)

func writeSVGFile(path string, layers []component.Layer, palette defs.Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create svg file: %w", err)
	}
	if err := export.WriteSVG(f, layers, palette); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
