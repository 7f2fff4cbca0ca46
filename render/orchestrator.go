// Package render draws the experience into a terminal: the projected wheel
// scene, the surface-scanning reticle, the reward overlay, and the status
// bar. Renderers register at a priority and draw back-to-front into an
// off-screen buffer flushed once per frame.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/prize-wheel/experience"
)

// Renderer draws one layer of a frame
type Renderer interface {
	Render(snap experience.Snapshot, buf *Buffer)
}

// Priority orders renderers back to front
type Priority int

const (
	PriorityScene   Priority = 100
	PriorityReticle Priority = 300
	PriorityUI      Priority = 400
	PriorityOverlay Priority = 500
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *Buffer
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator over the given screen
func NewOrchestrator(screen tcell.Screen, width, height int) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		buffer:    NewBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the given priority, keeping the list sorted
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and resyncs the terminal
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// RenderFrame runs the pipeline: clear, render all layers, flush, show
func (o *Orchestrator) RenderFrame(snap experience.Snapshot) {
	o.buffer.Clear()
	for _, entry := range o.renderers {
		entry.renderer.Render(snap, o.buffer)
	}
	o.buffer.Flush(o.screen)
	o.screen.Show()
}
