// cmd/illustration/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-angioplasty/internal/app"
	"go-angioplasty/internal/assets"
	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/state"
)

const startFromLesson = true // true — начинать с урока, false — с меню

// AppViewer — ebiten-обёртка над машиной состояний вьюера.
type AppViewer struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppViewer) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppViewer) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "сид поля клеток; 0 — от времени")
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

	fonts, err := assets.NewFonts()
	if err != nil {
		log.Fatal(err)
	}

	lesson := app.NewLesson(*seed)
	sm := state.NewStateMachine()
	if startFromLesson {
		sm.SetState(state.NewLessonState(sm, lesson, fonts, palette))
	} else {
		sm.SetState(state.NewMenuState(sm, lesson, fonts, palette))
	}

	viewer := &AppViewer{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Coronary Angioplasty")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
