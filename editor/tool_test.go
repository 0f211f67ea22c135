package editor

import (
	"testing"

	"layerboard/core"
)

func TestBackgroundClick_SelectClearsSelection(t *testing.T) {
	s := newTestSession()
	txt := s.AddTextLayer("a")
	if s.ActiveLayerID() != txt.ID {
		t.Fatal("text layer should be selected after creation")
	}

	s.SetActiveTool(ToolSelect)
	if created := s.HandleBackgroundClick(50, 50); created != nil {
		t.Error("select tool must not create layers on background clicks")
	}
	if s.ActiveLayerID() != "" {
		t.Error("background click with select tool should clear the selection")
	}
}

func TestBackgroundClick_TextPlacesAtClickPoint(t *testing.T) {
	s := newTestSession()
	s.SetActiveTool(ToolText)

	created := s.HandleBackgroundClick(240, 135)
	txt, ok := created.(*core.TextLayer)
	if !ok {
		t.Fatalf("created layer is %T, want *core.TextLayer", created)
	}
	if txt.X != 240 || txt.Y != 135 {
		t.Errorf("placement: got (%g,%g), want (240,135)", txt.X, txt.Y)
	}
	if s.ActiveLayerID() != txt.ID {
		t.Error("created layer should be selected")
	}

	// Canvas-click creation keeps the tool armed for rapid multi-placement.
	if s.ActiveTool() != ToolText {
		t.Errorf("tool after canvas placement: got %q, want %q", s.ActiveTool(), ToolText)
	}

	s.HandleBackgroundClick(10, 10)
	if got := len(s.ActivePage().Layers); got != 3 {
		t.Errorf("layer count after second placement: got %d, want 3", got)
	}
}

func TestBackgroundClick_Shapes(t *testing.T) {
	cases := []struct {
		tool Tool
		kind core.ShapeKind
	}{
		{ToolRect, core.ShapeRect},
		{ToolEllipse, core.ShapeEllipse},
	}

	for _, tc := range cases {
		t.Run(string(tc.tool), func(t *testing.T) {
			s := newTestSession()
			s.SetActiveTool(tc.tool)

			created := s.HandleBackgroundClick(33, 44)
			shape, ok := created.(*core.ShapeLayer)
			if !ok {
				t.Fatalf("created layer is %T, want *core.ShapeLayer", created)
			}
			if shape.ShapeType != tc.kind {
				t.Errorf("shape kind: got %q, want %q", shape.ShapeType, tc.kind)
			}
			if shape.X != 33 || shape.Y != 44 {
				t.Errorf("placement: got (%g,%g), want (33,44)", shape.X, shape.Y)
			}
			if s.ActiveTool() != tc.tool {
				t.Error("canvas-click creation must not revert the tool")
			}
		})
	}
}

func TestHandleLayerClick(t *testing.T) {
	s := newTestSession()
	txt := s.AddTextLayer("a")
	s.SetActiveLayer("")

	s.SetActiveTool(ToolRect) // any tool: clicking a layer selects it
	s.HandleLayerClick(txt.ID)
	if s.ActiveLayerID() != txt.ID {
		t.Error("clicking a layer should select it")
	}

	s.HandleLayerClick("no-such-layer")
	if s.ActiveLayerID() != txt.ID {
		t.Error("clicking an unknown id should leave the selection alone")
	}
}

func TestCreateFromToolbar_RevertsToSelect(t *testing.T) {
	s := newTestSession()
	s.SetActiveTool(ToolEllipse)

	created := s.CreateFromToolbar(ToolRect)
	if created == nil {
		t.Fatal("toolbar creation returned nil")
	}
	if s.ActiveTool() != ToolSelect {
		t.Errorf("tool after toolbar creation: got %q, want %q", s.ActiveTool(), ToolSelect)
	}

	if s.CreateFromToolbar(ToolSelect) != nil {
		t.Error("the select tool has no toolbar creation")
	}
}
