// cmd/export/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"go-angioplasty/internal/app"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/export"
)

// Экспорт учебных карточек: по одному PNG- или SVG-кадру на стадию.
func main() {
	outDir := flag.String("out", ".", "каталог для кадров")
	format := flag.String("format", "png", "png или svg")
	stageArg := flag.String("stage", "", "одна стадия; пусто — все")
	scale := flag.Int("scale", 2, "масштаб PNG-кадра")
	seed := flag.Int64("seed", 1, "сид поля клеток")
	palettePath := flag.String("palette", "", "JSON-файл с переопределениями палитры")
	flag.Parse()

	palette := defs.DefaultPalette()
	if *palettePath != "" {
		loaded, err := defs.LoadPalette(*palettePath)
		if err != nil {
			log.Fatal(err)
		}
		palette = loaded
	}

	stages := defs.StageSequence
	if *stageArg != "" {
		stage := defs.Stage(strings.ToUpper(*stageArg))
		if !stage.Valid() {
			log.Fatalf("unknown stage %q", *stageArg)
		}
		stages = []defs.Stage{stage}
	}

	lesson := app.NewLesson(*seed)
	for i, stage := range stages {
		name := fmt.Sprintf("%02d_%s.%s", i+1, strings.ToLower(string(stage)), *format)
		path := filepath.Join(*outDir, name)
		if err := writeFrame(path, *format, lesson, stage, palette, *scale); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)
	}
}

func writeFrame(path, format string, lesson *app.Lesson, stage defs.Stage, palette defs.Palette, scale int) error {
	layers := lesson.FrameFor(stage)
	switch format {
	case "png":
		return export.RenderPNG(path, layers, palette, scale)
	case "svg":
		return writeSVGFile(path, layers, palette)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
