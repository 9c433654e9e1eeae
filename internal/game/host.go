package game

import "github.com/iburimskiy/network-backdrop/internal/field"

// resizeBus tracks the window size reported by Layout and fans changes out
// to subscribers.
type resizeBus struct {
	w, h   int
	nextID int
	subs   map[int]func(w, h int)
}

func newResizeBus() *resizeBus {
	return &resizeBus{subs: map[int]func(w, h int){}}
}

func (b *resizeBus) Size() (int, int) { return b.w, b.h }

func (b *resizeBus) OnResize(fn func(w, h int)) func() {
	b.nextID++
	id := b.nextID
	b.subs[id] = fn
	return func() { delete(b.subs, id) }
}

// set records the size and notifies subscribers when it changed.
func (b *resizeBus) set(w, h int) bool {
	if w == b.w && h == b.h {
		return false
	}
	b.w, b.h = w, h
	for _, fn := range b.subs {
		fn(w, h)
	}
	return true
}

// frameQueue is a single-slot frame scheduler driven by Draw. Requesting a
// frame replaces whatever was pending.
type frameQueue struct {
	nextID    field.FrameID
	pendingID field.FrameID
	pending   func()
}

func (q *frameQueue) RequestFrame(fn func()) field.FrameID {
	q.nextID++
	q.pendingID = q.nextID
	q.pending = fn
	return q.nextID
}

func (q *frameQueue) CancelFrame(id field.FrameID) {
	if id != 0 && id == q.pendingID {
		q.pending = nil
		q.pendingID = 0
	}
}

// run executes the pending callback, if any.
func (q *frameQueue) run() bool {
	fn := q.pending
	if fn == nil {
		return false
	}
	q.pending = nil
	q.pendingID = 0
	fn()
	return true
}
