// Package shell evaluates the faux terminal's commands against a fixed dispatch table.
// Evaluation never fails: unknown input produces a canned "not found" response.
package shell

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/navigation"
	"github.com/lixenwraith/mind-palace/ui"
)

// AudioSwitch is the part of the audio engine the shell drives
type AudioSwitch interface {
	Enable() error
	Disable()
}

// Shell owns the pending input line and writes results into the shared transcript
type Shell struct {
	transcript *navigation.Transcript
	player     audio.Player
	audio      AudioSwitch
	input      *ui.TextFieldState
	table      map[string]Command
	lower      cases.Caser
	evaluated  int
}

// New creates a shell over transcript; sw may be nil when audio is unavailable
func New(transcript *navigation.Transcript, player audio.Player, sw AudioSwitch) *Shell {
	if player == nil {
		player = audio.Discard
	}
	s := &Shell{
		transcript: transcript,
		player:     player,
		audio:      sw,
		input:      ui.NewTextFieldState(""),
		table:      make(map[string]Command),
		lower:      cases.Lower(language.Und),
	}
	for _, c := range builtins() {
		s.table[c.Name] = c
	}
	return s
}

// Normalize lower-cases and trims input the way the dispatch table keys are stored
func (s *Shell) Normalize(input string) string {
	return s.lower.String(strings.TrimSpace(input))
}

// Evaluate runs one command line and returns the response appended to the transcript
// clear returns "" and leaves the transcript and pending input empty
func (s *Shell) Evaluate(input string) string {
	cmd := s.Normalize(input)
	s.evaluated++
	s.player.Play(TypingTone)

	c, ok := s.table[cmd]
	if ok && c.Clear {
		s.transcript.Clear()
		s.input.Clear()
		return ""
	}

	var response string
	if ok {
		response = c.Response
		if c.Run != nil {
			c.Run(s)
		}
		if c.Tone.Freq > 0 {
			s.player.Play(c.Tone)
		}
	} else {
		response = fmt.Sprintf(notFoundFormat, cmd)
		s.player.Play(notFoundTone)
	}

	s.transcript.Append("$ "+input, response)
	s.input.Clear()
	return response
}

func (s *Shell) enableAudio() {
	if s.audio == nil {
		return
	}
	if err := s.audio.Enable(); err != nil {
		log.Printf("shell: audio enable: %v", err)
	}
}

func (s *Shell) disableAudio() {
	if s.audio != nil {
		s.audio.Disable()
	}
}

// Submit evaluates the pending input
func (s *Shell) Submit() string {
	return s.Evaluate(s.input.Value())
}

// HandleKey routes a key to the input line; Enter submits
func (s *Shell) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter {
		s.Submit()
		return true
	}
	return s.input.HandleKey(ev)
}

// Input returns the pending input line
func (s *Shell) Input() *ui.TextFieldState {
	return s.input
}

// Transcript returns the shared transcript
func (s *Shell) Transcript() *navigation.Transcript {
	return s.transcript
}

// Lookup returns the table entry for an already normalized command
func (s *Shell) Lookup(cmd string) (Command, bool) {
	c, ok := s.table[cmd]
	return c, ok
}

// Commands returns the table entries sorted by name
func (s *Shell) Commands() []Command {
	out := make([]Command, 0, len(s.table))
	for _, c := range s.table {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Evaluated returns how many lines were evaluated
func (s *Shell) Evaluated() int {
	return s.evaluated
}
