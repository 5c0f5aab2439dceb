package navigation

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/vmath"
)

// EnterFunc is notified after the active room changes
type EnterFunc func(from, to Room)

// Navigator owns the active room and the shared transcript
// Single-goroutine: the event loop is the only caller
type Navigator struct {
	room       Room
	transcript *Transcript
	player     audio.Player
	rng        *vmath.FastRand
	listeners  []EnterFunc
	moves      int
}

// NewNavigator starts in Boot with an empty transcript
func NewNavigator(transcript *Transcript, player audio.Player, rng *vmath.FastRand) *Navigator {
	if player == nil {
		player = audio.Discard
	}
	return &Navigator{
		room:       Boot,
		transcript: transcript,
		player:     player,
		rng:        rng,
	}
}

// NavigationTone is the square blip played on every room change, pitch randomized upward from Freq
func NavigationTone(rng *vmath.FastRand) audio.Tone {
	return audio.Tone{
		Freq:     800 + rng.Float64()*400,
		Duration: 200 * time.Millisecond,
		Wave:     audio.WaveSquare,
	}
}

// NavigateTo replaces the active room, logs the move and plays the navigation tone
// Boot is not a target: the call is a no-op and returns false
func (n *Navigator) NavigateTo(room Room) bool {
	if room == Boot || !room.Valid() {
		return false
	}

	from := n.room
	n.room = room
	n.moves++
	n.transcript.Append(
		"cd "+room.Path(),
		fmt.Sprintf("Accessing %s neural pathway...", room),
	)
	n.player.Play(NavigationTone(n.rng))
	log.Printf("navigation: %s -> %s", from, room)

	n.notify(from, room)
	return true
}

// CompleteBoot is the single internal Boot -> Welcome transition; false when already past boot
// It appends nothing to the transcript
func (n *Navigator) CompleteBoot() bool {
	if n.room != Boot {
		return false
	}
	n.room = Welcome
	log.Printf("navigation: boot complete")
	n.notify(Boot, Welcome)
	return true
}

func (n *Navigator) notify(from, to Room) {
	for _, fn := range n.listeners {
		fn(from, to)
	}
}

// OnEnter registers fn for every room change
func (n *Navigator) OnEnter(fn EnterFunc) {
	n.listeners = append(n.listeners, fn)
}

// Room returns the active room
func (n *Navigator) Room() Room {
	return n.room
}

// Booted reports whether the boot sequence finished
func (n *Navigator) Booted() bool {
	return n.room != Boot
}

// Transcript returns the shared transcript
func (n *Navigator) Transcript() *Transcript {
	return n.transcript
}

// Moves returns the number of successful NavigateTo calls
func (n *Navigator) Moves() int {
	return n.moves
}
