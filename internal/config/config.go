// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 400

	// Канва иллюстрации: сосуд лежит горизонтально, все координаты ядра
	// заданы в этих единицах. Презентационный слой масштабирует их сам.
	CanvasWidth  = 400.0
	CanvasHeight = 200.0
	CanvasScale  = 2.0

	MaxDeltaTime = 0.06

	// Геометрия сосуда
	LumenCenterY = 100.0
	WallTopMinY  = 20.0
	WallTopMaxY  = 40.0
	WallBotMinY  = 160.0
	WallBotMaxY  = 180.0
	LumenMinY    = 70.0
	LumenMaxY    = 130.0

	// Полоса, которую перекрывает тромб
	ClotBandMinY = 90.0
	ClotBandMaxY = 110.0

	// Тромб
	ThrombusCenterX = 200.0
	ThrombusRadiusX = 45.0
	ThrombusRadiusY = 28.0

	// Бляшка: два зеркальных нароста на внутренних стенках
	PlaqueCenterX   = 200.0
	PlaqueHalfWidth = 70.0
	PlaqueMaxBulge  = 30.0

	// Клетки крови
	BloodCellCount       = 25
	BloodCellMinY        = 70.0
	BloodCellMaxY        = 130.0
	BloodCellMinSize     = 3.0
	BloodCellMaxSize     = 7.0
	BloodCellMaxPhase    = 2.0
	BloodCellMinVariance = 0.8
	BloodCellMaxVariance = 1.2

	// Баллонный катетер
	BalloonCenterX      = 200.0
	BalloonWidth        = 80.0
	BalloonTaperLength  = 15.0
	BalloonMaxHalfH     = 50.0
	BalloonMinInflation = 0.05

	// Стент
	StentCenterX        = 200.0
	StentLength         = 70.0
	StentSegments       = 8
	StentBaseRadius     = 6.0
	StentRadiusRange    = 44.0
	StentZigzagDepth    = 5.0
	StentCrossThreshold = 0.1

	// Проводник
	WireMaxProgress = 400.0
	WireY           = 100.0

	// Скорость твининга параметров во вьюере (единиц параметра в секунду)
	TweenRate = 1.6

	// Интервал автопроигрывания урока, секунд
	AutoPlayInterval = 4.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WallColor       = color.RGBA{200, 120, 110, 255}
	WallStrokeColor = color.RGBA{150, 80, 75, 255}
	PlaqueColor     = color.RGBA{230, 200, 110, 255}
	BloodCellColor  = color.RGBA{200, 40, 45, 255}
	ThrombusColor   = color.RGBA{110, 20, 30, 255}
	WireColor       = color.RGBA{190, 195, 205, 255}
	BalloonColor    = color.RGBA{120, 190, 230, 160}
	StentColor      = color.RGBA{210, 215, 220, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 160, 255}
	UIAccentColor   = color.RGBA{70, 130, 180, 220}
	UIBorderColor   = color.RGBA{240, 240, 240, 255}
)
