// Package trail keeps bounded, insertion-ordered position histories used to
// draw trajectories.
package trail

import "github.com/go-gl/mathgl/mgl64"

// DefaultCapacity is the number of samples kept per tracked body.
const DefaultCapacity = 300

// Buffer is a fixed-capacity FIFO of points. When full, Append evicts the
// oldest point. Index 0 is always the oldest sample.
type Buffer struct {
	data []mgl64.Vec2
	head int // index of the oldest sample
	n    int
}

// New creates an empty Buffer. A non-positive capacity selects DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{data: make([]mgl64.Vec2, capacity)}
}

// Append pushes p to the back, dropping the front sample on overflow.
func (b *Buffer) Append(p mgl64.Vec2) {
	if b.n < len(b.data) {
		b.data[(b.head+b.n)%len(b.data)] = p
		b.n++
		return
	}
	b.data[b.head] = p
	b.head = (b.head + 1) % len(b.data)
}

// Reset empties the buffer without releasing its storage.
func (b *Buffer) Reset() {
	b.head = 0
	b.n = 0
}

func (b *Buffer) Len() int { return b.n }
func (b *Buffer) Cap() int { return len(b.data) }

// At returns the i-th oldest sample.
func (b *Buffer) At(i int) mgl64.Vec2 {
	if i < 0 || i >= b.n {
		panic("trail: index out of range")
	}
	return b.data[(b.head+i)%len(b.data)]
}

// Last returns the newest sample, if any.
func (b *Buffer) Last() (mgl64.Vec2, bool) {
	if b.n == 0 {
		return mgl64.Vec2{}, false
	}
	return b.At(b.n - 1), true
}

// Points returns the samples in render order, oldest first.
func (b *Buffer) Points() []mgl64.Vec2 {
	out := make([]mgl64.Vec2, b.n)
	if b.n == 0 {
		return out
	}
	end := b.head + b.n
	if end <= len(b.data) {
		copy(out, b.data[b.head:end])
	} else {
		k := copy(out, b.data[b.head:])
		copy(out[k:], b.data[:end-len(b.data)])
	}
	return out
}
