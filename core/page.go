package core

import (
	"encoding/json"
	"fmt"

	"github.com/oklog/ulid/v2"
)

// Page is an ordered sequence of layers sharing one canvas. Z-order is the
// slice index; the last layer renders topmost.
type Page struct {
	ID     string  `json:"id"`
	Layers []Layer `json:"layers"`
}

// NewPage returns an empty page with a fresh id.
func NewPage() *Page {
	return &Page{
		ID:     ulid.Make().String(),
		Layers: []Layer{},
	}
}

// Clone deep-copies the page, keeping layer ids intact.
func (p *Page) Clone() *Page {
	c := &Page{
		ID:     p.ID,
		Layers: make([]Layer, len(p.Layers)),
	}
	for i, l := range p.Layers {
		c.Layers[i] = l.Clone()
	}
	return c
}

// CloneWithNewIDs deep-copies the page assigning fresh ids to the page and
// every layer, so duplication never collides with the source.
func (p *Page) CloneWithNewIDs() *Page {
	c := p.Clone()
	c.ID = ulid.Make().String()
	for _, l := range c.Layers {
		l.Base().ID = NewLayerID()
	}
	return c
}

// FindLayer returns the layer with the given id, or nil.
func (p *Page) FindLayer(id string) Layer {
	for _, l := range p.Layers {
		if l.Base().ID == id {
			return l
		}
	}
	return nil
}

func (p *Page) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     string            `json:"id"`
		Layers []json.RawMessage `json:"layers"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode page: %w", err)
	}

	layers := make([]Layer, 0, len(raw.Layers))
	for i, rl := range raw.Layers {
		layer, err := UnmarshalLayer(rl)
		if err != nil {
			return fmt.Errorf("page %s, layer %d: %w", raw.ID, i, err)
		}
		layers = append(layers, layer)
	}

	p.ID = raw.ID
	p.Layers = layers
	return nil
}

// ClonePages deep-copies a page sequence. Used for history snapshots and the
// persistence boundary, where aliasing live state would corrupt stored copies.
func ClonePages(pages []*Page) []*Page {
	c := make([]*Page, len(pages))
	for i, p := range pages {
		c[i] = p.Clone()
	}
	return c
}
