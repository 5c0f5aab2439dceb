package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityGalaxy
	PriorityParticle
	PriorityPointer
	PriorityVeil
	PriorityRoom
	PriorityUI
	PriorityTerminal
	PriorityOverlay
	PriorityDebug
)
