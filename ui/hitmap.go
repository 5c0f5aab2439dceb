package ui

// Hit is one clickable area registered during a frame
type Hit[T any] struct {
	Rect   Rect
	Target T
}

// HitMap collects clickable areas while panels draw and resolves clicks against the last frame
// Later registrations sit on top
type HitMap[T any] struct {
	hits []Hit[T]
}

// NewHitMap creates an empty map
func NewHitMap[T any]() *HitMap[T] {
	return &HitMap[T]{hits: make([]Hit[T], 0, 32)}
}

// Reset drops every area, called at the start of each frame
func (m *HitMap[T]) Reset() {
	clear(m.hits)
	m.hits = m.hits[:0]
}

// Add registers region r as a click target
func (m *HitMap[T]) Add(r Region, target T) {
	rect := r.Rect()
	if rect.Empty() {
		return
	}
	m.hits = append(m.hits, Hit[T]{Rect: rect, Target: target})
}

// At returns the topmost target containing cell (x, y)
func (m *HitMap[T]) At(x, y int) (T, bool) {
	for i := len(m.hits) - 1; i >= 0; i-- {
		if m.hits[i].Rect.Contains(x, y) {
			return m.hits[i].Target, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of registered areas
func (m *HitMap[T]) Len() int {
	return len(m.hits)
}
