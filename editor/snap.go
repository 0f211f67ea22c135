package editor

import "math"

// Snapping against canvas edges and centerlines during interactive move and
// resize. Pure: no session or history interaction; the caller commits the
// result through UpdateLayer and snapshots once at drag start. All values
// are canvas-space logical pixels — callers convert screen deltas before
// invoking.

const (
	// SnapThreshold is the distance within which an edge or centerline
	// attracts the dragged box.
	SnapThreshold = 8.0

	// MinResizeSize is the smallest box a resize may produce. Proposals
	// below it are rejected outright, not clamped.
	MinResizeSize = 10.0
)

// Box is an axis-aligned bounding box in canvas coordinates.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// GuideOrientation distinguishes vertical from horizontal guide lines.
type GuideOrientation string

const (
	GuideVertical   GuideOrientation = "vertical"
	GuideHorizontal GuideOrientation = "horizontal"
)

// Guide is a transient alignment line to render during the drag. Vertical
// guides sit at x = Position, horizontal at y = Position.
type Guide struct {
	Orientation GuideOrientation
	Position    float64
}

// SnapResult is the adjusted box plus the deltas applied to the proposal and
// the guides to render. Guides are cleared by the caller when the drag ends.
type SnapResult struct {
	Box    Box
	DX, DY float64
	Guides []Guide
}

// Handle names the edge or corner being dragged during a resize.
type Handle string

const (
	HandleLeft        Handle = "left"
	HandleRight       Handle = "right"
	HandleTop         Handle = "top"
	HandleBottom      Handle = "bottom"
	HandleTopLeft     Handle = "top-left"
	HandleTopRight    Handle = "top-right"
	HandleBottomLeft  Handle = "bottom-left"
	HandleBottomRight Handle = "bottom-right"
)

func (h Handle) movesLeft() bool {
	return h == HandleLeft || h == HandleTopLeft || h == HandleBottomLeft
}

func (h Handle) movesRight() bool {
	return h == HandleRight || h == HandleTopRight || h == HandleBottomRight
}

func (h Handle) movesTop() bool {
	return h == HandleTop || h == HandleTopLeft || h == HandleTopRight
}

func (h Handle) movesBottom() bool {
	return h == HandleBottom || h == HandleBottomLeft || h == HandleBottomRight
}

// SnapMove snaps a dragged box against the canvas. Each axis is evaluated
// independently; per axis the near edge wins over the far edge, which wins
// over the centerline, and at most one guide per axis is produced.
func SnapMove(box Box, canvasWidth, canvasHeight float64) SnapResult {
	res := SnapResult{Box: box}

	if dx, guide, ok := snapMoveAxis(box.X, box.Width, canvasWidth, GuideVertical); ok {
		res.DX = dx
		res.Box.X += dx
		res.Guides = append(res.Guides, guide)
	}
	if dy, guide, ok := snapMoveAxis(box.Y, box.Height, canvasHeight, GuideHorizontal); ok {
		res.DY = dy
		res.Box.Y += dy
		res.Guides = append(res.Guides, guide)
	}
	return res
}

func snapMoveAxis(min, size, canvasSize float64, o GuideOrientation) (float64, Guide, bool) {
	max := min + size
	center := min + size/2

	switch {
	case math.Abs(min) < SnapThreshold:
		return -min, Guide{Orientation: o, Position: 0}, true
	case math.Abs(max-canvasSize) < SnapThreshold:
		return canvasSize - max, Guide{Orientation: o, Position: canvasSize}, true
	case math.Abs(center-canvasSize/2) < SnapThreshold:
		return canvasSize/2 - center, Guide{Orientation: o, Position: canvasSize / 2}, true
	}
	return 0, Guide{}, false
}

// SnapResize snaps a box being resized by the given handle. Only the moving
// edge is considered (then the centerline); the opposite edge stays fixed.
// A proposal smaller than MinResizeSize in either dimension is rejected and
// prev is returned unchanged.
func SnapResize(prev, proposed Box, handle Handle, canvasWidth, canvasHeight float64) SnapResult {
	if proposed.Width < MinResizeSize || proposed.Height < MinResizeSize {
		return SnapResult{Box: prev}
	}

	res := SnapResult{Box: proposed}

	if handle.movesLeft() || handle.movesRight() {
		min, size, guide, ok := snapResizeAxis(proposed.X, proposed.Width, canvasWidth, handle.movesLeft(), GuideVertical)
		if ok {
			res.DX = min - proposed.X
			res.Box.X = min
			res.Box.Width = size
			res.Guides = append(res.Guides, guide)
		}
	}
	if handle.movesTop() || handle.movesBottom() {
		min, size, guide, ok := snapResizeAxis(proposed.Y, proposed.Height, canvasHeight, handle.movesTop(), GuideHorizontal)
		if ok {
			res.DY = min - proposed.Y
			res.Box.Y = min
			res.Box.Height = size
			res.Guides = append(res.Guides, guide)
		}
	}
	return res
}

// snapResizeAxis adjusts one axis of a resize. movingLow is true when the
// left/top edge is being dragged; the opposite edge never moves.
func snapResizeAxis(min, size, canvasSize float64, movingLow bool, o GuideOrientation) (float64, float64, Guide, bool) {
	max := min + size
	center := min + size/2

	var newMin, newSize float64
	var guide Guide

	switch {
	case movingLow && math.Abs(min) < SnapThreshold:
		newMin, newSize = 0, max
		guide = Guide{Orientation: o, Position: 0}
	case !movingLow && math.Abs(max-canvasSize) < SnapThreshold:
		newMin, newSize = min, canvasSize-min
		guide = Guide{Orientation: o, Position: canvasSize}
	case movingLow && math.Abs(center-canvasSize/2) < SnapThreshold:
		newMin = canvasSize - max
		newSize = max - newMin
		guide = Guide{Orientation: o, Position: canvasSize / 2}
	case !movingLow && math.Abs(center-canvasSize/2) < SnapThreshold:
		newMin = min
		newSize = canvasSize - 2*min
		guide = Guide{Orientation: o, Position: canvasSize / 2}
	default:
		return 0, 0, Guide{}, false
	}

	// A snap may not shrink the box past the resize floor.
	if newSize < MinResizeSize {
		return 0, 0, Guide{}, false
	}
	return newMin, newSize, guide, true
}
