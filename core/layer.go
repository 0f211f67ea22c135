package core

import (
	"encoding/json"
	"fmt"

	"github.com/oklog/ulid/v2"
)

type (
	// LayerType is the discriminant stored in the serialized "type" field.
	LayerType string

	// ShapeKind selects the geometry drawn by a shape layer.
	ShapeKind string

	// FontStyle matches the CSS-style font style strings used by renderers.
	FontStyle string
)

const (
	LayerTypeImage LayerType = "image"
	LayerTypeText  LayerType = "text"
	LayerTypeShape LayerType = "shape"

	ShapeRect    ShapeKind = "rect"
	ShapeEllipse ShapeKind = "ellipse"

	FontStyleNormal     FontStyle = "normal"
	FontStyleBold       FontStyle = "bold"
	FontStyleItalic     FontStyle = "italic"
	FontStyleBoldItalic FontStyle = "bold italic"
)

// LayerBase holds the attributes shared by every layer variant. X/Y are the
// top-left corner in canvas space, rotation is in degrees and opacity is in
// [0,1].
type LayerBase struct {
	ID       string    `json:"id"`
	Type     LayerType `json:"type"`
	Name     string    `json:"name"`
	Visible  bool      `json:"visible"`
	Locked   bool      `json:"locked"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Rotation float64   `json:"rotation"`
	ScaleX   float64   `json:"scaleX"`
	ScaleY   float64   `json:"scaleY"`
	Opacity  float64   `json:"opacity"`
}

// Layer is the tagged union over the three visual element kinds. Consumers
// narrow with a type switch on *ImageLayer / *TextLayer / *ShapeLayer; the
// variant-specific fields are guaranteed present once narrowed.
type Layer interface {
	// Base returns the shared attributes for in-place mutation.
	Base() *LayerBase

	// Clone returns a deep copy sharing no memory with the receiver.
	Clone() Layer
}

// Corners is an image corner radius: a single uniform value or one value per
// corner. It round-trips the legacy JSON encoding where a uniform radius is a
// bare number.
type Corners []float64

func (c Corners) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]float64(c))
}

func (c *Corners) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		*c = Corners{scalar}
		return nil
	}
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("corner radius must be a number or an array: %w", err)
	}
	*c = Corners(arr)
	return nil
}

type ImageLayer struct {
	LayerBase
	DataURL      string  `json:"dataUrl"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	CornerRadius Corners `json:"cornerRadius,omitempty"`
}

type TextLayer struct {
	LayerBase
	Text          string    `json:"text"`
	FontSize      float64   `json:"fontSize"`
	FontFamily    string    `json:"fontFamily"`
	FontStyle     FontStyle `json:"fontStyle"`
	Fill          string    `json:"fill"`
	Stroke        string    `json:"stroke"`
	StrokeWidth   float64   `json:"strokeWidth"`
	ShadowColor   string    `json:"shadowColor"`
	ShadowBlur    float64   `json:"shadowBlur"`
	ShadowOffsetX float64   `json:"shadowOffsetX"`
	ShadowOffsetY float64   `json:"shadowOffsetY"`
}

type ShapeLayer struct {
	LayerBase
	ShapeType    ShapeKind `json:"shapeType"`
	Width        float64   `json:"width"`
	Height       float64   `json:"height"`
	Fill         string    `json:"fill"`
	Stroke       string    `json:"stroke"`
	StrokeWidth  float64   `json:"strokeWidth"`
	CornerRadius float64   `json:"cornerRadius,omitempty"` // rect only
}

func (l *ImageLayer) Base() *LayerBase { return &l.LayerBase }
func (l *TextLayer) Base() *LayerBase  { return &l.LayerBase }
func (l *ShapeLayer) Base() *LayerBase { return &l.LayerBase }

func (l *ImageLayer) Clone() Layer {
	c := *l
	if l.CornerRadius != nil {
		c.CornerRadius = append(Corners(nil), l.CornerRadius...)
	}
	return &c
}

func (l *TextLayer) Clone() Layer {
	c := *l
	return &c
}

func (l *ShapeLayer) Clone() Layer {
	c := *l
	return &c
}

// NewLayerID returns a fresh layer id. ULIDs are unique for the lifetime of
// a document, so ids are never reused even across pages.
func NewLayerID() string {
	return ulid.Make().String()
}

func newLayerBase(t LayerType, name string) LayerBase {
	return LayerBase{
		ID:      NewLayerID(),
		Type:    t,
		Name:    name,
		Visible: true,
		ScaleX:  1,
		ScaleY:  1,
		Opacity: 1,
	}
}

// NewImageLayer builds an image layer placed at the canvas origin.
func NewImageLayer(dataURL string, width, height float64) *ImageLayer {
	return &ImageLayer{
		LayerBase: newLayerBase(LayerTypeImage, "Image"),
		DataURL:   dataURL,
		Width:     width,
		Height:    height,
	}
}

// NewTextLayer builds a text layer with renderer-friendly defaults at the
// standard insertion offset.
func NewTextLayer(text string) *TextLayer {
	base := newLayerBase(LayerTypeText, "Text")
	base.X, base.Y = 100, 100
	return &TextLayer{
		LayerBase:   base,
		Text:        text,
		FontSize:    32,
		FontFamily:  "Arial",
		FontStyle:   FontStyleNormal,
		Fill:        "#000000",
		ShadowColor: "#000000",
	}
}

// NewShapeLayer builds a 100x100 shape layer at the standard insertion offset.
func NewShapeLayer(kind ShapeKind) *ShapeLayer {
	name := "Rectangle"
	if kind == ShapeEllipse {
		name = "Ellipse"
	}
	base := newLayerBase(LayerTypeShape, name)
	base.X, base.Y = 100, 100
	return &ShapeLayer{
		LayerBase: base,
		ShapeType: kind,
		Width:     100,
		Height:    100,
		Fill:      "#cccccc",
	}
}

// UnmarshalLayer decodes a single serialized layer by probing its "type"
// discriminant and decoding the matching variant.
func UnmarshalLayer(data []byte) (Layer, error) {
	var probe struct {
		Type LayerType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to probe layer type: %w", err)
	}

	var layer Layer
	switch probe.Type {
	case LayerTypeImage:
		layer = &ImageLayer{}
	case LayerTypeText:
		layer = &TextLayer{}
	case LayerTypeShape:
		layer = &ShapeLayer{}
	default:
		return nil, fmt.Errorf("unknown layer type %q", probe.Type)
	}

	if err := json.Unmarshal(data, layer); err != nil {
		return nil, fmt.Errorf("failed to decode %s layer: %w", probe.Type, err)
	}
	return layer, nil
}
