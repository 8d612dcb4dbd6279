// internal/export/raster.go
package export

import (
	"fmt"

	"github.com/gogpu/gg"

	"go-angioplasty/internal/component"
	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/geometry"
)

// RenderPNG растеризует кадр в PNG-файл через программный растеризатор
// gg. scale — целочисленный множитель канвы (2 даёт 800×400).
func RenderPNG(path string, layers []component.Layer, palette defs.Palette, scale int) error {
	if scale < 1 {
		scale = 1
	}
	dc := RenderFrame(layers, palette, scale)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save frame: %w", err)
	}
	return nil
}

// RenderFrame отрисовывает кадр в контекст gg и возвращает его.
func RenderFrame(layers []component.Layer, palette defs.Palette, scale int) *gg.Context {
	dc := gg.NewContext(int(config.CanvasWidth)*scale, int(config.CanvasHeight)*scale)
	dc.Scale(float64(scale), float64(scale))

	for _, layer := range layers {
		if !layer.Visible {
			continue
		}
		drawLayer(dc, layer, palette)
	}
	return dc
}

func drawLayer(dc *gg.Context, layer component.Layer, palette defs.Palette) {
	switch layer.ID {
	case component.LayerMuscle:
		dc.SetColor(palette.Color(layer.Color))
		dc.DrawRectangle(0, 0, config.CanvasWidth, config.CanvasHeight)
		dc.Fill()

	case component.LayerWall:
		dc.SetColor(config.WallColor)
		dc.DrawRectangle(0, config.WallTopMinY, config.CanvasWidth, config.WallTopMaxY-config.WallTopMinY)
		dc.Fill()
		dc.DrawRectangle(0, config.WallBotMinY, config.CanvasWidth, config.WallBotMaxY-config.WallBotMinY)
		dc.Fill()

	case component.LayerPlaque:
		ry := config.PlaqueMaxBulge * layer.Scale
		dc.SetColor(config.PlaqueColor)
		dc.DrawEllipse(config.PlaqueCenterX, config.WallTopMaxY, config.PlaqueHalfWidth, ry)
		dc.Fill()
		dc.DrawEllipse(config.PlaqueCenterX, config.WallBotMinY, config.PlaqueHalfWidth, ry)
		dc.Fill()

	case component.LayerBloodCells:
		dc.SetColor(config.BloodCellColor)
		for _, sprite := range layer.Cells {
			if !sprite.Visible {
				continue
			}
			x := sprite.Cell.PhaseDelay / config.BloodCellMaxPhase * config.CanvasWidth
			dc.DrawCircle(x, sprite.Cell.Y, sprite.Cell.Size)
			dc.Fill()
		}

	case component.LayerThrombus:
		c := config.ThrombusColor
		dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, layer.Opacity)
		dc.DrawEllipse(config.ThrombusCenterX, config.LumenCenterY, config.ThrombusRadiusX, config.ThrombusRadiusY)
		dc.Fill()

	case component.LayerGuidewire:
		dc.SetColor(config.WireColor)
		dc.SetLineWidth(2)
		dc.DrawLine(0, config.WireY, layer.WireEnd, config.WireY)
		dc.Stroke()

	case component.LayerBalloon:
		if layer.Balloon.Empty() {
			return
		}
		tracePath(dc, geometry.Polyline(layer.Balloon), true)
		dc.SetColor(config.BalloonColor)
		dc.FillPreserve()
		dc.SetLineWidth(1.5)
		dc.Stroke()

	case component.LayerStent:
		if layer.Stent == nil {
			return
		}
		dc.SetColor(config.StentColor)
		dc.SetLineWidth(layer.Stent.StrutWidth())
		for _, strut := range layer.Stent.Struts {
			tracePath(dc, strut, false)
			dc.Stroke()
		}
		dc.SetLineWidth(layer.Stent.CrossWidth())
		for _, cross := range layer.Stent.CrossStruts {
			tracePath(dc, cross, false)
			dc.Stroke()
		}
	}
}

func tracePath(dc *gg.Context, points geometry.Polyline, closed bool) {
	if len(points) == 0 {
		return
	}
	dc.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	if closed {
		dc.ClosePath()
	}
}
