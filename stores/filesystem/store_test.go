package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"layerboard/core"
)

func sampleDocument(text string) *core.Document {
	page := core.NewPage()
	page.Layers = append(page.Layers, core.NewTextLayer(text))
	return &core.Document{
		Pages:        []*core.Page{page},
		CanvasWidth:  800,
		CanvasHeight: 600,
	}
}

func TestCreateAndFindID(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	id, err := store.Create(ctx, sampleDocument("persisted"))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if len(id) != 26 {
		t.Errorf("Create() returned invalid ID length: got %d, want 26", len(id))
	}

	retrieved, err := store.FindID(ctx, id)
	if err != nil {
		t.Fatalf("FindID() failed: %v", err)
	}
	if got := retrieved.Pages[0].Layers[0].(*core.TextLayer).Text; got != "persisted" {
		t.Errorf("retrieved text: got %q, want %q", got, "persisted")
	}
	if retrieved.CanvasWidth != 800 {
		t.Errorf("canvas width: got %g, want 800", retrieved.CanvasWidth)
	}
}

func TestFindID_NotFound(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.FindID(context.Background(), "nonexistent-id")
	if err == nil {
		t.Fatal("FindID() should return error for nonexistent ID")
	}
}

func TestFindID_LegacySinglePageFile(t *testing.T) {
	// Files written before multi-page support hold a bare layer array; the
	// store must normalize them into a single-page document.
	dir := t.TempDir()
	store := NewStore(dir)

	legacy := `[{"id":"a","type":"text","name":"T","visible":true,"locked":false,"x":1,"y":2,"rotation":0,"scaleX":1,"scaleY":1,"opacity":1,"text":"old","fontSize":24,"fontFamily":"Arial","fontStyle":"normal","fill":"#000"}]`
	if err := os.WriteFile(filepath.Join(dir, "LEGACY01.json"), []byte(legacy), 0644); err != nil {
		t.Fatalf("failed to write legacy file: %v", err)
	}

	doc, err := store.FindID(context.Background(), "LEGACY01")
	if err != nil {
		t.Fatalf("FindID() failed: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("legacy page count: got %d, want 1", len(doc.Pages))
	}
	if got := doc.Pages[0].Layers[0].(*core.TextLayer).Text; got != "old" {
		t.Errorf("legacy text: got %q, want %q", got, "old")
	}
}

func TestFindID_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "BROKEN01.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if _, err := store.FindID(context.Background(), "BROKEN01"); err == nil {
		t.Error("FindID() should fail on a corrupt file")
	}
}
