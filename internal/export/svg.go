// internal/export/svg.go
package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"go-angioplasty/internal/component"
	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
)

// WriteSVG сериализует собранный кадр в самостоятельный SVG-документ.
// Пути геометрии уже в нотации SVG path data, остальные слои — базовые
// фигуры. Кадр статичный: твининг и анимация потока остаются за
// презентационным слоем, который этот документ потребляет.
func WriteSVG(w io.Writer, layers []component.Layer, palette defs.Palette) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g">`+"\n",
		config.CanvasWidth, config.CanvasHeight)

	for _, layer := range layers {
		if !layer.Visible {
			continue
		}
		writeLayer(&b, layer, palette)
	}

	b.WriteString("</svg>\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

// FrameSVG — удобная обёртка, возвращающая документ строкой.
func FrameSVG(layers []component.Layer, palette defs.Palette) string {
	var b strings.Builder
	// strings.Builder не возвращает ошибок записи
	_ = WriteSVG(&b, layers, palette)
	return b.String()
}

func writeLayer(b *strings.Builder, layer component.Layer, palette defs.Palette) {
	fmt.Fprintf(b, `<g id=%q>`+"\n", layer.ID.String())
	defer b.WriteString("</g>\n")

	switch layer.ID {
	case component.LayerMuscle:
		fmt.Fprintf(b, `<rect x="0" y="0" width="%g" height="%g" fill="%s"/>`+"\n",
			config.CanvasWidth, config.CanvasHeight, hexColor(palette.Color(layer.Color)))

	case component.LayerWall:
		wall := hexColor(config.WallColor)
		fmt.Fprintf(b, `<rect x="0" y="%g" width="%g" height="%g" fill="%s"/>`+"\n",
			config.WallTopMinY, config.CanvasWidth, config.WallTopMaxY-config.WallTopMinY, wall)
		fmt.Fprintf(b, `<rect x="0" y="%g" width="%g" height="%g" fill="%s"/>`+"\n",
			config.WallBotMinY, config.CanvasWidth, config.WallBotMaxY-config.WallBotMinY, wall)

	case component.LayerPlaque:
		ry := config.PlaqueMaxBulge * layer.Scale
		fill := hexColor(config.PlaqueColor)
		fmt.Fprintf(b, `<ellipse cx="%g" cy="%g" rx="%g" ry="%s" fill="%s"/>`+"\n",
			config.PlaqueCenterX, config.WallTopMaxY, config.PlaqueHalfWidth, ftoa(ry), fill)
		fmt.Fprintf(b, `<ellipse cx="%g" cy="%g" rx="%g" ry="%s" fill="%s"/>`+"\n",
			config.PlaqueCenterX, config.WallBotMinY, config.PlaqueHalfWidth, ftoa(ry), fill)

	case component.LayerBloodCells:
		fill := hexColor(config.BloodCellColor)
		for _, sprite := range layer.Cells {
			if !sprite.Visible {
				continue
			}
			// Статичный кадр: клетка стоит в точке, задаваемой её фазой
			x := sprite.Cell.PhaseDelay / config.BloodCellMaxPhase * config.CanvasWidth
			fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
				ftoa(x), ftoa(sprite.Cell.Y), ftoa(sprite.Cell.Size), fill)
		}

	case component.LayerThrombus:
		fmt.Fprintf(b, `<ellipse cx="%g" cy="%g" rx="%g" ry="%g" fill="%s" fill-opacity="%s"/>`+"\n",
			config.ThrombusCenterX, config.LumenCenterY,
			config.ThrombusRadiusX, config.ThrombusRadiusY,
			hexColor(config.ThrombusColor), ftoa(layer.Opacity))

	case component.LayerGuidewire:
		fmt.Fprintf(b, `<line x1="0" y1="%g" x2="%s" y2="%g" stroke="%s" stroke-width="2"/>`+"\n",
			config.WireY, ftoa(layer.WireEnd), config.WireY, hexColor(config.WireColor))

	case component.LayerBalloon:
		if layer.Balloon.Empty() {
			return
		}
		fmt.Fprintf(b, `<path d="%s" fill="%s" fill-opacity="0.6" stroke="%s" stroke-width="1.5"/>`+"\n",
			layer.Balloon.Data(), hexColor(config.BalloonColor), hexColor(config.BalloonColor))

	case component.LayerStent:
		if layer.Stent == nil {
			return
		}
		stroke := hexColor(config.StentColor)
		for _, strut := range layer.Stent.Struts {
			fmt.Fprintf(b, `<path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
				strut.Data(), stroke, ftoa(layer.Stent.StrutWidth()))
		}
		for _, cross := range layer.Stent.CrossStruts {
			fmt.Fprintf(b, `<path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
				cross.Data(), stroke, ftoa(layer.Stent.CrossWidth()))
		}
	}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func ftoa(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
