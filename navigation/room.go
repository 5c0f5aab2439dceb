// Package navigation tracks the active room and the command transcript.
package navigation

import (
	"strings"
)

// Room is one of the fixed destinations; Boot is the initial state and is never a navigation target
type Room uint8

const (
	Boot Room = iota
	Welcome
	PrefrontalCortex
	TemporalLobe
	LimbicSystem
	MotorCortex
	Synapse
	roomCount
)

var roomSlugs = [roomCount]string{
	Boot:             "boot",
	Welcome:          "welcome",
	PrefrontalCortex: "prefrontal-cortex",
	TemporalLobe:     "temporal-lobe",
	LimbicSystem:     "limbic-system",
	MotorCortex:      "motor-cortex",
	Synapse:          "synapse",
}

// Menu labels shown in the neural pathways panel
var roomLabels = [roomCount]string{
	Boot:             "BOOT",
	Welcome:          "WELCOME",
	PrefrontalCortex: "PROJECTS",
	TemporalLobe:     "MEMORY",
	LimbicSystem:     "CHAOS",
	MotorCortex:      "SKILLS",
	Synapse:          "CONTACT",
}

// String returns the room slug
func (r Room) String() string {
	if r >= roomCount {
		return "unknown"
	}
	return roomSlugs[r]
}

// Label returns the menu label
func (r Room) Label() string {
	if r >= roomCount {
		return ""
	}
	return roomLabels[r]
}

// Path returns the terminal path for the room, the first '-' replaced with '_'
func (r Room) Path() string {
	return "/" + strings.Replace(r.String(), "-", "_", 1)
}

// Valid reports whether r is a defined room
func (r Room) Valid() bool {
	return r < roomCount
}

// ParseRoom resolves a slug
func ParseRoom(s string) (Room, bool) {
	for i, slug := range roomSlugs {
		if slug == s {
			return Room(i), true
		}
	}
	return Boot, false
}

// MenuRooms returns the navigable rooms in menu order
func MenuRooms() []Room {
	return []Room{Welcome, PrefrontalCortex, TemporalLobe, LimbicSystem, MotorCortex, Synapse}
}
