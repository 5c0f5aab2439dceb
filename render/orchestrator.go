package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Registration removes its renderer from the orchestrator
type Registration struct {
	o     *Orchestrator
	index int
}

// Remove unregisters the renderer, safe to call repeatedly
func (r Registration) Remove() {
	if r.o == nil {
		return
	}
	for i, e := range r.o.renderers {
		if e.index == r.index {
			r.o.renderers = append(r.o.renderers[:i], r.o.renderers[i+1:]...)
			return
		}
	}
}

// Orchestrator coordinates the render pipeline: clear, render all by priority, flush
type Orchestrator struct {
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator with a buffer of the given cell dimensions
func NewOrchestrator(width, height int) *Orchestrator {
	return &Orchestrator{
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) Registration {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
	return Registration{o: o, index: entry.index}
}

// Len returns the number of registered renderers
func (o *Orchestrator) Len() int {
	return len(o.renderers)
}

// Buffer exposes the compositor for tests and snapshots
func (o *Orchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Resize updates buffer dimensions
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
}

// RenderFrame clears the buffer and runs every visible renderer back to front
func (o *Orchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}
}

// Present renders a frame, flushes it to screen and shows it
func (o *Orchestrator) Present(ctx RenderContext, screen tcell.Screen) {
	o.RenderFrame(ctx)
	o.buffer.Flush(screen)
	screen.Show()
}
