// internal/export/svg_test.go
package export

import (
	"image/color"
	"strings"
	"testing"

	"go-angioplasty/internal/component"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/system"
	"go-angioplasty/internal/utils"
)

func frameSVG(t *testing.T, stage defs.Stage) string {
	t.Helper()
	field := component.NewBloodField(25, utils.NewPRNGService(42))
	layers := system.NewCompositor().Compose(stage, defs.Resolve(stage), field)
	return FrameSVG(layers, defs.DefaultPalette())
}

func TestFrameSVG_Healthy(t *testing.T) {
	doc := frameSVG(t, defs.StageHealthy)

	if !strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 200">`) {
		t.Errorf("unexpected document head: %q", doc[:min(len(doc), 80)])
	}
	if !strings.HasSuffix(doc, "</svg>\n") {
		t.Error("document not closed")
	}

	for _, id := range []string{"muscle", "wall", "blood-cells"} {
		if !strings.Contains(doc, `<g id="`+id+`">`) {
			t.Errorf("expected layer group %q", id)
		}
	}
	for _, id := range []string{"plaque", "thrombus", "guidewire", "balloon", "stent"} {
		if strings.Contains(doc, `<g id="`+id+`">`) {
			t.Errorf("healthy frame must not contain layer %q", id)
		}
	}
	if strings.Count(doc, "<g ") != strings.Count(doc, "</g>") {
		t.Error("unbalanced group tags")
	}
}

func TestFrameSVG_StentDeploy(t *testing.T) {
	doc := frameSVG(t, defs.StageStentDeploy)

	for _, id := range []string{"guidewire", "balloon", "stent"} {
		if !strings.Contains(doc, `<g id="`+id+`">`) {
			t.Errorf("expected layer group %q", id)
		}
	}
	// 16 основных распорок и 16 перемычек, каждая отдельным path
	if got := strings.Count(doc, `fill="none"`); got != 32 {
		t.Errorf("expected 32 stent paths, got %d", got)
	}
	if !strings.Contains(doc, `fill-opacity="0.6"`) {
		t.Error("expected translucent balloon fill")
	}
}

func TestFrameSVG_RuptureHidesOccludedCells(t *testing.T) {
	field := component.NewBloodField(25, utils.NewPRNGService(42))
	layers := system.NewCompositor().Compose(
		defs.StageRuptureThrombosis, defs.Resolve(defs.StageRuptureThrombosis), field)
	doc := FrameSVG(layers, defs.DefaultPalette())

	visible := 0
	for _, cell := range field.Cells() {
		if cell.Y <= 90 || cell.Y >= 110 {
			visible++
		}
	}
	if got := strings.Count(doc, "<circle"); got != visible {
		t.Errorf("expected %d cell circles, got %d", visible, got)
	}
	if !strings.Contains(doc, `<g id="thrombus">`) {
		t.Error("expected thrombus layer")
	}
}

func TestFrameSVG_PaletteRemap(t *testing.T) {
	palette := defs.DefaultPalette()
	palette[defs.MusclePinkTissue] = color.RGBA{R: 1, G: 2, B: 3, A: 255}

	doc := frameSVG(t, defs.StageHealthy)
	remapped := FrameSVG(
		system.NewCompositor().Compose(defs.StageHealthy, defs.Resolve(defs.StageHealthy),
			component.NewBloodField(25, utils.NewPRNGService(42))),
		palette)

	if doc == remapped {
		t.Error("palette remap had no effect on document")
	}
	if !strings.Contains(remapped, "#010203") {
		t.Error("expected remapped muscle color in document")
	}
}
