package editor

import (
	"layerboard/core"
)

// Direction moves a layer one step through the z-order.
type Direction string

const (
	// MoveUp swaps a layer with the one above it (toward the top of the
	// paint order, i.e. the end of the slice).
	MoveUp Direction = "up"
	// MoveDown swaps a layer with the one below it.
	MoveDown Direction = "down"
)

// Session is the single-writer document state for one editing session: the
// page sequence, the active page/layer/tool pointers and the canvas size.
// All mutation goes through its methods; structural mutations snapshot
// history first. Session is not safe for concurrent use — ownership is a
// single UI event loop.
type Session struct {
	pages           []*core.Page
	activePageIndex int
	activeLayerID   string
	activeTool      Tool
	canvasWidth     float64
	canvasHeight    float64
	history         *History
}

// NewSession creates a session with one blank page carrying the default
// background layer.
func NewSession(canvasWidth, canvasHeight float64) *Session {
	s := &Session{
		activeTool:   ToolSelect,
		canvasWidth:  canvasWidth,
		canvasHeight: canvasHeight,
		history:      NewHistory(),
	}
	s.pages = []*core.Page{s.newBackgroundPage()}
	return s
}

// newBackgroundPage builds a page holding a locked full-canvas white rect,
// the conventional backdrop for new pages.
func (s *Session) newBackgroundPage() *core.Page {
	page := core.NewPage()
	bg := core.NewShapeLayer(core.ShapeRect)
	bg.Name = "Background"
	bg.Locked = true
	bg.X, bg.Y = 0, 0
	bg.Width = s.canvasWidth
	bg.Height = s.canvasHeight
	bg.Fill = "#ffffff"
	page.Layers = append(page.Layers, bg)
	return page
}

// Accessors. Pages and layers are returned live for reading; callers must
// not mutate them directly.

func (s *Session) Pages() []*core.Page            { return s.pages }
func (s *Session) ActivePageIndex() int           { return s.activePageIndex }
func (s *Session) ActivePage() *core.Page         { return s.pages[s.activePageIndex] }
func (s *Session) ActiveLayerID() string          { return s.activeLayerID }
func (s *Session) ActiveTool() Tool               { return s.activeTool }
func (s *Session) CanvasSize() (float64, float64) { return s.canvasWidth, s.canvasHeight }
func (s *Session) History() *History              { return s.history }

// ActiveLayer returns the active layer, or nil if nothing is selected.
func (s *Session) ActiveLayer() core.Layer {
	if s.activeLayerID == "" {
		return nil
	}
	return s.ActivePage().FindLayer(s.activeLayerID)
}

// PushHistory snapshots the current pages. Exposed for callers performing
// discrete edits through UpdateLayer.
func (s *Session) PushHistory() {
	s.history.Push(s.pages)
}

// AddImageLayer appends a new image layer at the canvas origin to the active
// page and selects it.
func (s *Session) AddImageLayer(dataURL string, width, height float64) *core.ImageLayer {
	s.history.Push(s.pages)
	layer := core.NewImageLayer(dataURL, width, height)
	s.appendLayer(layer)
	return layer
}

// AddTextLayer appends a new text layer to the active page and selects it.
func (s *Session) AddTextLayer(text string) *core.TextLayer {
	s.history.Push(s.pages)
	layer := core.NewTextLayer(text)
	s.appendLayer(layer)
	return layer
}

// AddShapeLayer appends a new shape layer to the active page and selects it.
func (s *Session) AddShapeLayer(kind core.ShapeKind) *core.ShapeLayer {
	s.history.Push(s.pages)
	layer := core.NewShapeLayer(kind)
	s.appendLayer(layer)
	return layer
}

func (s *Session) appendLayer(layer core.Layer) {
	page := s.ActivePage()
	page.Layers = append(page.Layers, layer)
	s.activeLayerID = layer.Base().ID
}

// UpdateLayer applies a partial update to the layer with the given id on the
// active page. It does not snapshot history itself: discrete callers push
// explicitly beforehand, continuous callers go through
// UpdateLayerDebounced. Unknown ids are silently ignored.
func (s *Session) UpdateLayer(id string, apply func(core.Layer)) {
	layer := s.ActivePage().FindLayer(id)
	if layer == nil {
		return
	}
	apply(layer)
}

// UpdateLayerDebounced is UpdateLayer for continuous edits (sliders, drags):
// it snapshots history at most once per debounce interval, coalescing the
// burst into a single undo step.
func (s *Session) UpdateLayerDebounced(id string, apply func(core.Layer)) {
	if s.ActivePage().FindLayer(id) == nil {
		return
	}
	s.history.PushDebounced(s.pages)
	s.UpdateLayer(id, apply)
}

// RemoveLayer deletes the layer with the given id from the active page,
// clearing the selection if it was selected. Unknown ids are ignored.
func (s *Session) RemoveLayer(id string) {
	page := s.ActivePage()
	if page.FindLayer(id) == nil {
		return
	}
	s.history.Push(s.pages)

	layers := page.Layers[:0:0]
	for _, l := range page.Layers {
		if l.Base().ID != id {
			layers = append(layers, l)
		}
	}
	page.Layers = layers

	if s.activeLayerID == id {
		s.activeLayerID = ""
	}
}

// MoveLayer swaps the layer with its z-order neighbor. No-op at either end
// of the stack.
func (s *Session) MoveLayer(id string, dir Direction) {
	page := s.ActivePage()
	idx := -1
	for i, l := range page.Layers {
		if l.Base().ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	target := idx
	switch dir {
	case MoveUp:
		target = idx + 1
	case MoveDown:
		target = idx - 1
	}
	if target == idx || target < 0 || target >= len(page.Layers) {
		return
	}

	s.history.Push(s.pages)
	page.Layers[idx], page.Layers[target] = page.Layers[target], page.Layers[idx]
}

// ReorderLayers moves the layer at fromIndex to toIndex on the active page
// (drag-reorder in a layers panel). Out-of-range indices are ignored.
func (s *Session) ReorderLayers(fromIndex, toIndex int) {
	page := s.ActivePage()
	n := len(page.Layers)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n || fromIndex == toIndex {
		return
	}

	s.history.Push(s.pages)
	layer := page.Layers[fromIndex]
	page.Layers = append(page.Layers[:fromIndex], page.Layers[fromIndex+1:]...)
	page.Layers = append(page.Layers[:toIndex], append([]core.Layer{layer}, page.Layers[toIndex:]...)...)
}

// AddPage appends a new background page and makes it active.
func (s *Session) AddPage() *core.Page {
	s.history.Push(s.pages)
	page := s.newBackgroundPage()
	s.pages = append(s.pages, page)
	s.activePageIndex = len(s.pages) - 1
	s.activeLayerID = ""
	return page
}

// RemovePage deletes the page at index. The last remaining page can never be
// removed; the active pointer prefers the previous index.
func (s *Session) RemovePage(index int) {
	if len(s.pages) <= 1 || index < 0 || index >= len(s.pages) {
		return
	}
	s.history.Push(s.pages)

	removedActive := s.activePageIndex == index
	s.pages = append(s.pages[:index], s.pages[index+1:]...)

	switch {
	case removedActive:
		s.activePageIndex = index - 1
		if s.activePageIndex < 0 {
			s.activePageIndex = 0
		}
		s.activeLayerID = ""
	case s.activePageIndex > index:
		s.activePageIndex--
	}
}

// DuplicatePage deep-clones the page at index with freshly generated ids and
// inserts the copy immediately after the source. The active pointer keeps
// tracking the same logical page.
func (s *Session) DuplicatePage(index int) {
	if index < 0 || index >= len(s.pages) {
		return
	}
	s.history.Push(s.pages)

	dup := s.pages[index].CloneWithNewIDs()
	s.pages = append(s.pages[:index+1], append([]*core.Page{dup}, s.pages[index+1:]...)...)
	if s.activePageIndex > index {
		s.activePageIndex++
	}
}

// ReorderPages moves the page at fromIndex to toIndex, recomputing the
// active pointer so it keeps referencing the same logical page.
func (s *Session) ReorderPages(fromIndex, toIndex int) {
	n := len(s.pages)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n || fromIndex == toIndex {
		return
	}
	s.history.Push(s.pages)

	page := s.pages[fromIndex]
	s.pages = append(s.pages[:fromIndex], s.pages[fromIndex+1:]...)
	s.pages = append(s.pages[:toIndex], append([]*core.Page{page}, s.pages[toIndex:]...)...)

	switch {
	case s.activePageIndex == fromIndex:
		s.activePageIndex = toIndex
	case fromIndex < s.activePageIndex && toIndex >= s.activePageIndex:
		s.activePageIndex--
	case fromIndex > s.activePageIndex && toIndex <= s.activePageIndex:
		s.activePageIndex++
	}
}

// SetActivePage switches the active page. Invalid indices are ignored.
func (s *Session) SetActivePage(index int) {
	if index < 0 || index >= len(s.pages) || index == s.activePageIndex {
		return
	}
	s.activePageIndex = index
	s.activeLayerID = ""
}

// SetActiveLayer selects the layer with the given id on the active page, or
// clears the selection when id is empty. Ids not present on the active page
// are ignored.
func (s *Session) SetActiveLayer(id string) {
	if id == "" {
		s.activeLayerID = ""
		return
	}
	if s.ActivePage().FindLayer(id) != nil {
		s.activeLayerID = id
	}
}

// SetCanvasSize updates the shared canvas dimensions. Existing layer
// geometry is untouched; layers keep their absolute coordinates even if
// that overflows the new canvas.
func (s *Session) SetCanvasSize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.canvasWidth = width
	s.canvasHeight = height
}

// Undo restores the previous snapshot. Silent no-op with nothing to undo.
func (s *Session) Undo() {
	pages, ok := s.history.Undo(s.pages)
	if !ok {
		return
	}
	s.restorePages(pages)
}

// Redo restores the next snapshot. Silent no-op at the tip.
func (s *Session) Redo() {
	pages, ok := s.history.Redo()
	if !ok {
		return
	}
	s.restorePages(pages)
}

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// restorePages swaps in a restored page set, clamping the active page index
// and dropping a selection that no longer resolves.
func (s *Session) restorePages(pages []*core.Page) {
	s.pages = pages
	if s.activePageIndex >= len(s.pages) {
		s.activePageIndex = len(s.pages) - 1
	}
	if s.activePageIndex < 0 {
		s.activePageIndex = 0
	}
	if s.activeLayerID != "" && s.ActivePage().FindLayer(s.activeLayerID) == nil {
		s.activeLayerID = ""
	}
}

// Reset discards all pages and history and reinitializes to a single blank
// background page.
func (s *Session) Reset() {
	s.pages = []*core.Page{s.newBackgroundPage()}
	s.activePageIndex = 0
	s.activeLayerID = ""
	s.activeTool = ToolSelect
	s.history.Reset()
}

// Export deep-copies the session into the persistence shape. The returned
// document shares no memory with live state.
func (s *Session) Export() *core.Document {
	return &core.Document{
		Pages:        core.ClonePages(s.pages),
		CanvasWidth:  s.canvasWidth,
		CanvasHeight: s.canvasHeight,
	}
}

// Load is the bulk-load entry point for the persistence boundary: it assigns
// the document's pages directly, resets history and reinitializes the
// pointers. The document is deep-copied on the way in.
func (s *Session) Load(doc *core.Document) {
	c := doc.Clone()
	if len(c.Pages) == 0 {
		c.Pages = []*core.Page{s.newBackgroundPage()}
	}
	s.pages = c.Pages
	if c.CanvasWidth > 0 && c.CanvasHeight > 0 {
		s.canvasWidth = c.CanvasWidth
		s.canvasHeight = c.CanvasHeight
	}
	s.activePageIndex = 0
	s.activeLayerID = ""
	s.history.Reset()
}
