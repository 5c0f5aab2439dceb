package renderers

import (
	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/contact"
	"github.com/lixenwraith/mind-palace/navigation"
	"github.com/lixenwraith/mind-palace/ui"
)

// Action is what a click on a registered area does
type Action uint8

const (
	ActionTone Action = iota
	ActionNavigate
	ActionAudio
	ActionCloseTerminal
	ActionFocus
	ActionSubmit
)

// Target is a click target registered while panels draw
type Target struct {
	Action Action
	Tone   audio.Tone
	Room   navigation.Room
	Field  contact.Field
}

// HitMap resolves clicks against the targets of the last frame
type HitMap = ui.HitMap[Target]

// NewHitMap creates an empty target map
func NewHitMap() *HitMap {
	return ui.NewHitMap[Target]()
}

func toneTarget(t audio.Tone) Target {
	return Target{Action: ActionTone, Tone: t}
}
