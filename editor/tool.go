package editor

import (
	"layerboard/core"
)

// Tool is the active editing tool. It decides how a click on empty canvas is
// interpreted.
type Tool string

const (
	ToolSelect  Tool = "select"
	ToolText    Tool = "text"
	ToolRect    Tool = "rect"
	ToolEllipse Tool = "ellipse"
)

const defaultText = "New Text"

// SetActiveTool switches the tool immediately, with no side effects.
func (s *Session) SetActiveTool(tool Tool) {
	s.activeTool = tool
}

// HandleBackgroundClick interprets a click on empty canvas at (x, y) in
// canvas coordinates. Creation tools place a new layer at the click point
// and keep the tool armed so repeated clicks place repeatedly; the select
// tool clears the selection.
func (s *Session) HandleBackgroundClick(x, y float64) core.Layer {
	switch s.activeTool {
	case ToolText:
		layer := s.AddTextLayer(defaultText)
		s.UpdateLayer(layer.ID, func(l core.Layer) {
			b := l.Base()
			b.X, b.Y = x, y
		})
		return layer
	case ToolRect:
		return s.placeShape(core.ShapeRect, x, y)
	case ToolEllipse:
		return s.placeShape(core.ShapeEllipse, x, y)
	default:
		s.activeLayerID = ""
		return nil
	}
}

func (s *Session) placeShape(kind core.ShapeKind, x, y float64) core.Layer {
	layer := s.AddShapeLayer(kind)
	s.UpdateLayer(layer.ID, func(l core.Layer) {
		b := l.Base()
		b.X, b.Y = x, y
	})
	return layer
}

// HandleLayerClick selects the clicked layer, whatever the active tool.
func (s *Session) HandleLayerClick(id string) {
	s.SetActiveLayer(id)
}

// CreateFromToolbar creates a layer for a toolbar button press. Unlike
// canvas-click placement, toolbar creation is single-shot: the tool reverts
// to select immediately afterwards.
func (s *Session) CreateFromToolbar(tool Tool) core.Layer {
	var layer core.Layer
	switch tool {
	case ToolText:
		layer = s.AddTextLayer(defaultText)
	case ToolRect:
		layer = s.AddShapeLayer(core.ShapeRect)
	case ToolEllipse:
		layer = s.AddShapeLayer(core.ShapeEllipse)
	default:
		return nil
	}
	s.activeTool = ToolSelect
	return layer
}
