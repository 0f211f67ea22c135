package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

type (
	// Document is the JSON-serializable persistence shape: every page plus
	// the canvas size shared by all of them. Selection and tool pointers are
	// session state and are deliberately not part of it.
	Document struct {
		Pages        []*Page `json:"pages"`
		CanvasWidth  float64 `json:"canvasWidth"`
		CanvasHeight float64 `json:"canvasHeight"`
	}

	// DocumentStore is the persistence boundary. Implementations live under
	// stores/ and are selected at startup.
	DocumentStore interface {
		FindID(ctx context.Context, id string) (*Document, error)
		Create(ctx context.Context, document *Document) (string, error)
	}
)

// Clone deep-copies the document.
func (d *Document) Clone() *Document {
	return &Document{
		Pages:        ClonePages(d.Pages),
		CanvasWidth:  d.CanvasWidth,
		CanvasHeight: d.CanvasHeight,
	}
}

// Encode serializes the document for storage.
func (d *Document) Encode() ([]byte, error) {
	return json.Marshal(d)
}

// DecodeDocument parses a persisted document, accepting the legacy
// single-page shapes alongside the current one:
//
//   - current: {"pages":[{"id":…,"layers":[…]}],"canvasWidth":…}
//   - legacy:  a bare top-level layer array
//   - legacy:  {"layers":[…]} without a pages wrapper
//
// Legacy payloads are wrapped into a single synthesized page. The result
// always has at least one page.
func DecodeDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document payload")
	}

	if trimmed[0] == '[' {
		return decodeLegacyLayers(trimmed, 0, 0)
	}

	var probe struct {
		Pages  json.RawMessage `json:"pages"`
		Layers json.RawMessage `json:"layers"`
		Width  float64         `json:"canvasWidth"`
		Height float64         `json:"canvasHeight"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	if probe.Pages == nil && probe.Layers != nil {
		return decodeLegacyLayers(probe.Layers, probe.Width, probe.Height)
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if len(doc.Pages) == 0 {
		doc.Pages = []*Page{NewPage()}
	}
	return &doc, nil
}

func decodeLegacyLayers(data []byte, width, height float64) (*Document, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode legacy layer array: %w", err)
	}

	page := NewPage()
	for i, rl := range raw {
		layer, err := UnmarshalLayer(rl)
		if err != nil {
			return nil, fmt.Errorf("legacy layer %d: %w", i, err)
		}
		page.Layers = append(page.Layers, layer)
	}

	return &Document{
		Pages:        []*Page{page},
		CanvasWidth:  width,
		CanvasHeight: height,
	}, nil
}
