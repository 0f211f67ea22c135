package editor

import (
	"time"

	"layerboard/core"
)

const (
	// maxSnapshots bounds the undo stack; the oldest entry is evicted first.
	maxSnapshots = 50

	// debounceInterval coalesces rapid continuous edits (sliders, drags)
	// into one undo step.
	debounceInterval = 500 * time.Millisecond
)

// History keeps a bounded stack of deep-copied page snapshots. An index of -1
// means the initial state, with nothing to undo. History operations never
// fail; exhaustion at either end is a silent no-op.
type History struct {
	snapshots [][]*core.Page
	index     int
	lastPush  time.Time
	now       func() time.Time
}

func NewHistory() *History {
	return &History{
		index: -1,
		now:   time.Now,
	}
}

func (h *History) CanUndo() bool { return h.index >= 0 }
func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }

// Len reports the number of stored snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Push records a deep copy of pages as the new tip. Any redo-able snapshots
// beyond the current index are discarded, and the oldest entry is evicted
// once the cap is reached.
func (h *History) Push(pages []*core.Page) {
	h.snapshots = append(h.snapshots[:h.index+1], core.ClonePages(pages))
	if len(h.snapshots) > maxSnapshots {
		h.snapshots = h.snapshots[1:]
	}
	h.index = len(h.snapshots) - 1
	h.lastPush = h.now()
}

// PushDebounced records a snapshot only if the debounce interval has elapsed
// since the previous push, so a burst of continuous edits lands in a single
// undo step. It reports whether a snapshot was taken.
func (h *History) PushDebounced(pages []*core.Page) bool {
	if !h.lastPush.IsZero() && h.now().Sub(h.lastPush) <= debounceInterval {
		return false
	}
	h.Push(pages)
	return true
}

// Undo steps back one snapshot and returns a deep copy of it. When sitting at
// the tip it first pushes the live state, so a later redo can return to an
// in-progress state that was never explicitly snapshotted. The index is
// floored at 0; undoing past the oldest snapshot keeps restoring it.
func (h *History) Undo(current []*core.Page) ([]*core.Page, bool) {
	if h.index < 0 {
		return nil, false
	}
	if h.index == len(h.snapshots)-1 {
		h.Push(current)
	}
	h.index--
	if h.index < 0 {
		h.index = 0
	}
	return core.ClonePages(h.snapshots[h.index]), true
}

// Redo steps forward one snapshot and returns a deep copy of it. No-op at
// the tip.
func (h *History) Redo() ([]*core.Page, bool) {
	if h.index >= len(h.snapshots)-1 {
		return nil, false
	}
	h.index++
	return core.ClonePages(h.snapshots[h.index]), true
}

// Reset discards every snapshot.
func (h *History) Reset() {
	h.snapshots = nil
	h.index = -1
	h.lastPush = time.Time{}
}
