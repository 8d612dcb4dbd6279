// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-angioplasty/internal/component"
	"go-angioplasty/internal/config"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/geometry"
)

// RenderSystem рисует собранный кадр на экране. Слои приходят уже в
// z-порядке; система только переводит их в вызовы отрисовки и ведёт
// анимацию потока и пульсацию умирающей ткани по игровому времени.
type RenderSystem struct {
	palette defs.Palette
	scale   float64

	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

// NewRenderSystem создаёт систему отрисовки с палитрой тканей.
func NewRenderSystem(palette defs.Palette) *RenderSystem {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &RenderSystem{
		palette: palette,
		scale:   config.CanvasScale,
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 64),
		fillIs:  make([]uint16, 0, 96),
	}
}

// Draw отрисовывает слои кадра, сзади вперёд.
func (s *RenderSystem) Draw(screen *ebiten.Image, layers []component.Layer, gameTime float64) {
	for _, layer := range layers {
		if !layer.Visible {
			continue
		}
		switch layer.ID {
		case component.LayerMuscle:
			s.drawMuscle(screen, layer, gameTime)
		case component.LayerWall:
			s.drawWalls(screen)
		case component.LayerPlaque:
			s.drawPlaque(screen, layer)
		case component.LayerBloodCells:
			s.drawCells(screen, layer, gameTime)
		case component.LayerThrombus:
			s.drawThrombus(screen, layer)
		case component.LayerGuidewire:
			s.drawWire(screen, layer)
		case component.LayerBalloon:
			s.drawBalloon(screen, layer)
		case component.LayerStent:
			s.drawStent(screen, layer)
		}
	}
}

func (s *RenderSystem) drawMuscle(screen *ebiten.Image, layer component.Layer, gameTime float64) {
	muscle := s.palette.Color(layer.Color)
	if layer.Dying {
		// Пульсация ишемизированной ткани
		pulse := 0.12 + 0.08*math.Sin(gameTime*2*math.Pi/1.5)
		muscle = darken(muscle, pulse)
	}
	screen.Fill(muscle)
}

func (s *RenderSystem) drawWalls(screen *ebiten.Image) {
	sc := float32(s.scale)
	w := float32(config.CanvasWidth) * sc
	vector.DrawFilledRect(screen, 0, float32(config.WallTopMinY)*sc, w,
		float32(config.WallTopMaxY-config.WallTopMinY)*sc, config.WallColor, true)
	vector.DrawFilledRect(screen, 0, float32(config.WallBotMinY)*sc, w,
		float32(config.WallBotMaxY-config.WallBotMinY)*sc, config.WallColor, true)
}

func (s *RenderSystem) drawPlaque(screen *ebiten.Image, layer component.Layer) {
	ry := config.PlaqueMaxBulge * layer.Scale
	s.fillEllipse(screen, config.PlaqueCenterX, config.WallTopMaxY, config.PlaqueHalfWidth, ry, config.PlaqueColor)
	s.fillEllipse(screen, config.PlaqueCenterX, config.WallBotMinY, config.PlaqueHalfWidth, ry, config.PlaqueColor)
}

func (s *RenderSystem) drawCells(screen *ebiten.Image, layer component.Layer, gameTime float64) {
	sc := float32(s.scale)
	for _, sprite := range layer.Cells {
		if !sprite.Visible {
			continue
		}
		x := cellX(sprite, gameTime)
		vector.DrawFilledCircle(screen, float32(x)*sc, float32(sprite.Cell.Y)*sc,
			float32(sprite.Cell.Size)*sc, config.BloodCellColor, true)
	}
}

// cellX — позиция клетки вдоль сосуда. При остановленном потоке клетка
// замирает в точке, задаваемой её фазой.
func cellX(sprite component.CellSprite, gameTime float64) float64 {
	phase := sprite.Cell.PhaseDelay / config.BloodCellMaxPhase
	if sprite.FlowDuration >= defs.FlowStopped {
		return phase * config.CanvasWidth
	}
	t := gameTime/sprite.FlowDuration + phase
	t -= math.Floor(t)
	return t * config.CanvasWidth
}

func (s *RenderSystem) drawThrombus(screen *ebiten.Image, layer component.Layer) {
	c := config.ThrombusColor
	c.A = uint8(float64(c.A) * layer.Opacity)
	s.fillEllipse(screen, config.ThrombusCenterX, config.LumenCenterY,
		config.ThrombusRadiusX, config.ThrombusRadiusY, c)
}

func (s *RenderSystem) drawWire(screen *ebiten.Image, layer component.Layer) {
	sc := float32(s.scale)
	vector.StrokeLine(screen, 0, float32(config.WireY)*sc,
		float32(layer.WireEnd)*sc, float32(config.WireY)*sc, 2*sc, config.WireColor, true)
}

func (s *RenderSystem) drawBalloon(screen *ebiten.Image, layer component.Layer) {
	if layer.Balloon.Empty() {
		return
	}
	s.fillPolygon(screen, layer.Balloon, config.BalloonColor)
	s.strokePolyline(screen, geometry.Polyline(layer.Balloon), true, 1.5, config.BalloonColor)
}

func (s *RenderSystem) drawStent(screen *ebiten.Image, layer component.Layer) {
	mesh := layer.Stent
	if mesh == nil {
		return
	}
	for _, strut := range mesh.Struts {
		s.strokePolyline(screen, strut, false, mesh.StrutWidth(), config.StentColor)
	}
	for _, cross := range mesh.CrossStruts {
		s.strokePolyline(screen, cross, false, mesh.CrossWidth(), config.StentColor)
	}
}

// fillPolygon заливает выпуклый контур через триангуляцию vector.Path.
func (s *RenderSystem) fillPolygon(screen *ebiten.Image, outline geometry.Outline, fill color.RGBA) {
	sc := float32(s.scale)
	path := vector.Path{}
	for i, pt := range outline {
		if i == 0 {
			path.MoveTo(float32(pt.X)*sc, float32(pt.Y)*sc)
		} else {
			path.LineTo(float32(pt.X)*sc, float32(pt.Y)*sc)
		}
	}
	path.Close()
	s.fillPath(screen, &path, fill)
}

// fillEllipse строит эллипс сэмплированным многоугольником и заливает его.
func (s *RenderSystem) fillEllipse(screen *ebiten.Image, cx, cy, rx, ry float64, fill color.RGBA) {
	if ry <= 0 {
		return
	}
	sc := float32(s.scale)
	const segments = 32
	path := vector.Path{}
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		px := cx + rx*math.Cos(angle)
		py := cy + ry*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px)*sc, float32(py)*sc)
		} else {
			path.LineTo(float32(px)*sc, float32(py)*sc)
		}
	}
	path.Close()
	s.fillPath(screen, &path, fill)
}

func (s *RenderSystem) fillPath(screen *ebiten.Image, path *vector.Path, fill color.RGBA) {
	s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
	for i := range s.fillVs {
		s.fillVs[i].ColorR = float32(fill.R) / 255
		s.fillVs[i].ColorG = float32(fill.G) / 255
		s.fillVs[i].ColorB = float32(fill.B) / 255
		s.fillVs[i].ColorA = float32(fill.A) / 255
	}
	screen.DrawTriangles(s.fillVs, s.fillIs, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *RenderSystem) strokePolyline(screen *ebiten.Image, points geometry.Polyline, closed bool, width float64, clr color.RGBA) {
	sc := float32(s.scale)
	for i := 0; i+1 < len(points); i++ {
		vector.StrokeLine(screen,
			float32(points[i].X)*sc, float32(points[i].Y)*sc,
			float32(points[i+1].X)*sc, float32(points[i+1].Y)*sc,
			float32(width)*sc, clr, true)
	}
	if closed && len(points) > 2 {
		last := points[len(points)-1]
		vector.StrokeLine(screen,
			float32(last.X)*sc, float32(last.Y)*sc,
			float32(points[0].X)*sc, float32(points[0].Y)*sc,
			float32(width)*sc, clr, true)
	}
}

func darken(c color.RGBA, amount float64) color.RGBA {
	k := 1 - amount
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
