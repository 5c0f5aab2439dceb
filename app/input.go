package app

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mind-palace/contact"
	"github.com/lixenwraith/mind-palace/navigation"
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/render/renderers"
)

// inputFocus decides which text input receives keys
type inputFocus uint8

const (
	focusTerminal inputFocus = iota
	focusForm
)

// HandleEvent routes one terminal event; false means the session should end
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.width, s.height = ev.Size()
		s.orch.Resize(s.width, s.height)
		s.screen.Sync()
	case *tcell.EventFocus:
		s.handleFocus(ev.Focused)
	}
	return !s.quit
}

func (s *Session) handleFocus(focused bool) {
	if !s.cfg.Display.PauseOnBlur {
		return
	}
	if focused {
		s.clock.Resume()
	} else {
		s.clock.Pause()
	}
}

func (s *Session) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	s.pointer = render.CellToPixel(x, y)
	s.pointerSeen = true

	if m := s.main; m != nil {
		m.cosmic.SetPointer(s.pointer)
		if s.rng.Chance(TrailChance) {
			m.trail.Spawn(s.pointer)
		}
	}

	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && s.buttons&tcell.Button1 == 0
	s.buttons = buttons
	if !pressed {
		return
	}
	if target, ok := s.hits.At(x, y); ok {
		s.dispatch(target)
	}
}

// dispatch performs the action behind a clicked hit region
func (s *Session) dispatch(t renderers.Target) {
	switch t.Action {
	case renderers.ActionTone:
		s.audio.Play(t.Tone)
	case renderers.ActionNavigate:
		s.nav.NavigateTo(t.Room)
	case renderers.ActionAudio:
		if _, err := s.audio.Toggle(); err != nil {
			log.Printf("session: audio: %v", err)
		}
	case renderers.ActionCloseTerminal:
		s.terminal.SetOpen(false)
	case renderers.ActionFocus:
		if f := s.form(); f != nil {
			f.Focus(t.Field)
			s.focus = focusForm
		}
	case renderers.ActionSubmit:
		if f := s.form(); f != nil {
			s.submit(f)
		}
	}
}

func (s *Session) form() *contact.Form {
	if s.main == nil {
		return nil
	}
	return s.main.view.Form
}

func (s *Session) submit(f *contact.Form) {
	if err := f.Submit(); err != nil {
		log.Printf("session: contact: %v", err)
	}
}

func (s *Session) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		s.quit = true
		return
	case tcell.KeyF12:
		s.debug.Toggle()
		return
	}
	if s.Stage() != StageMain {
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		s.terminal.Toggle()
		if s.terminal.IsVisible() {
			s.focus = focusTerminal
		}
		return
	case tcell.KeyTab, tcell.KeyBacktab:
		if f := s.form(); f != nil {
			s.focus = focusForm
			f.HandleKey(ev)
		}
		return
	}

	if f := s.form(); f != nil && (s.focus == focusForm || !s.terminal.IsVisible()) {
		if _, err := f.HandleKey(ev); err != nil {
			log.Printf("session: contact: %v", err)
		}
		return
	}
	if s.terminal.IsVisible() {
		s.shell.HandleKey(ev)
		return
	}
	if ev.Key() == tcell.KeyRune {
		if room, ok := roomForDigit(ev.Rune()); ok {
			s.nav.NavigateTo(room)
		}
	}
}

// roomForDigit maps 1-6 to the menu rooms in order
func roomForDigit(r rune) (navigation.Room, bool) {
	rooms := navigation.MenuRooms()
	i := int(r - '1')
	if i < 0 || i >= len(rooms) {
		return 0, false
	}
	return rooms[i], true
}
