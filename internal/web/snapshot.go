// internal/web/snapshot.go
package web

import (
	"go-angioplasty/internal/app"
	"go-angioplasty/internal/component"
	"go-angioplasty/internal/defs"
	"go-angioplasty/internal/geometry"
)

// FrameSnapshot — кадр стадии в формате для фронтенда: параметры, готовые
// SVG-пути геометрии и аннотированные клетки. Клиент сам анимирует
// переходы между снапшотами.
type FrameSnapshot struct {
	Stage      string        `json:"stage"`
	Title      string        `json:"title"`
	StageIndex int           `json:"stage_index"`
	StageCount int           `json:"stage_count"`
	Params     ParamsData    `json:"params"`
	Balloon    string        `json:"balloon_path"` // пустая строка — баллона нет
	Stent      StentData     `json:"stent"`
	Cells      []CellData    `json:"cells"`
	Layers     []LayerData   `json:"layers"`
}

// ParamsData — визуальные параметры стадии.
type ParamsData struct {
	PlaqueCompression float64 `json:"plaque_compression"`
	ClotOpacity       float64 `json:"clot_opacity"`
	WireProgress      float64 `json:"wire_progress"`
	BalloonInflation  float64 `json:"balloon_inflation"`
	StentExpansion    float64 `json:"stent_expansion"`
	FlowSpeed         float64 `json:"flow_speed"`
	FlowStopped       bool    `json:"flow_stopped"`
	MuscleColor       string  `json:"muscle_color"`
	IsMuscleDying     bool    `json:"is_muscle_dying"`
}

// StentData — сетка стента: два независимых набора путей.
type StentData struct {
	Radius      float64  `json:"radius"`
	Struts      []string `json:"struts"`
	CrossStruts []string `json:"cross_struts"`
	StrutWidth  float64  `json:"strut_width"`
	CrossWidth  float64  `json:"cross_width"`
}

// CellData — клетка крови с аннотациями видимости и длительности.
type CellData struct {
	ID            int     `json:"id"`
	Y             float64 `json:"y"`
	PhaseDelay    float64 `json:"phase_delay"`
	Size          float64 `json:"size"`
	SpeedVariance float64 `json:"speed_variance"`
	Visible       bool    `json:"visible"`
	FlowDuration  float64 `json:"flow_duration"`
}

// LayerData — слой кадра в z-порядке.
type LayerData struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
}

// Snapshot собирает кадр стадии урока в транспортную форму.
func Snapshot(lesson *app.Lesson, stage defs.Stage) FrameSnapshot {
	params := defs.Resolve(stage)
	layers := lesson.FrameFor(stage)

	snap := FrameSnapshot{
		Stage:      string(stage),
		Title:      defs.StageTitles[stage],
		StageIndex: defs.StageIndex(stage),
		StageCount: len(defs.StageSequence),
		Params: ParamsData{
			PlaqueCompression: params.PlaqueCompression,
			ClotOpacity:       params.ClotOpacity,
			WireProgress:      params.WireProgress,
			BalloonInflation:  params.BalloonInflation,
			StentExpansion:    params.StentExpansion,
			FlowSpeed:         params.FlowSpeed,
			FlowStopped:       params.FlowSpeed >= defs.FlowStopped,
			MuscleColor:       string(params.MuscleColor),
			IsMuscleDying:     params.IsMuscleDying,
		},
		Layers: make([]LayerData, 0, len(layers)),
	}

	for _, layer := range layers {
		snap.Layers = append(snap.Layers, LayerData{
			ID:      layer.ID.String(),
			Visible: layer.Visible,
		})
		switch layer.ID {
		case component.LayerBalloon:
			snap.Balloon = layer.Balloon.Data()
		case component.LayerStent:
			snap.Stent = stentData(layer.Stent)
		case component.LayerBloodCells:
			snap.Cells = cellData(layer.Cells)
		}
	}
	return snap
}

func stentData(mesh *geometry.StentMesh) StentData {
	data := StentData{
		Radius:      mesh.Radius,
		Struts:      make([]string, 0, len(mesh.Struts)),
		CrossStruts: make([]string, 0, len(mesh.CrossStruts)),
		StrutWidth:  mesh.StrutWidth(),
		CrossWidth:  mesh.CrossWidth(),
	}
	for _, strut := range mesh.Struts {
		data.Struts = append(data.Struts, strut.Data())
	}
	for _, cross := range mesh.CrossStruts {
		data.CrossStruts = append(data.CrossStruts, cross.Data())
	}
	return data
}

func cellData(sprites []component.CellSprite) []CellData {
	cells := make([]CellData, 0, len(sprites))
	for _, s := range sprites {
		cells = append(cells, CellData{
			ID:            s.Cell.ID,
			Y:             s.Cell.Y,
			PhaseDelay:    s.Cell.PhaseDelay,
			Size:          s.Cell.Size,
			SpeedVariance: s.Cell.SpeedVariance,
			Visible:       s.Visible,
			FlowDuration:  s.FlowDuration,
		})
	}
	return cells
}
