package trail

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/binarylab/internal/orbit"
)

// Set owns one Buffer per tracked body.
type Set struct {
	buffers [orbit.NumBodies]*Buffer
}

// NewSet allocates a buffer of the given capacity for every body.
func NewSet(capacity int) *Set {
	s := &Set{}
	for i := range s.buffers {
		s.buffers[i] = New(capacity)
	}
	return s
}

// Append records p for body id.
func (s *Set) Append(id orbit.BodyID, p mgl64.Vec2) {
	s.buffers[id].Append(p)
}

// Buffer returns the trail for body id.
func (s *Set) Buffer(id orbit.BodyID) *Buffer {
	return s.buffers[id]
}

// Reset clears every trail. Called on any configuration change.
func (s *Set) Reset() {
	for _, b := range s.buffers {
		b.Reset()
	}
}

// Record appends the position of every body tracked in pos.Frame.
func (s *Set) Record(pos orbit.Positions) {
	for _, id := range orbit.Tracked(pos.Frame) {
		if p, ok := pos.Get(id); ok {
			s.buffers[id].Append(p)
		}
	}
}

// Snapshot copies every non-empty trail, oldest point first.
func (s *Set) Snapshot() map[orbit.BodyID][]mgl64.Vec2 {
	out := make(map[orbit.BodyID][]mgl64.Vec2)
	for i, b := range s.buffers {
		if b.Len() > 0 {
			out[orbit.BodyID(i)] = b.Points()
		}
	}
	return out
}
