// Package contact implements the synapse room's transmission form.
// Nothing leaves the process: a submission runs a timed transmitting -> success -> idle cycle.
package contact

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/engine"
	"github.com/lixenwraith/mind-palace/ui"
)

// Status is the transmission state
type Status uint8

const (
	Idle Status = iota
	Transmitting
	Success
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Transmitting:
		return "transmitting"
	case Success:
		return "success"
	}
	return "unknown"
}

// Cycle timing
const (
	TransmitDuration = 2 * time.Second
	SuccessHold      = 3 * time.Second
)

var (
	ErrTransmitting = errors.New("transmission in progress")
	ErrRequired     = errors.New("field required")
	ErrInvalidEmail = errors.New("invalid quantum address")
)

// Field identifies a focusable control in tab order
type Field uint8

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
	FieldSubmit
	fieldCount
)

// FieldSpec is the label, placeholder and focus tone of one input
type FieldSpec struct {
	Label       string
	Placeholder string
	FocusFreq   float64
}

// Fields describes the three inputs in tab order
var Fields = [3]FieldSpec{
	{Label: "identify_cosmic_sender --name", Placeholder: "your_cosmic_name_here", FocusFreq: 600},
	{Label: "set_quantum_address --email", Placeholder: "your.signal@cosmic.domain", FocusFreq: 650},
	{Label: "compose_dimensional_message --content", Placeholder: "// Your cosmic transmission here...", FocusFreq: 700},
}

var (
	clickTone    = audio.Tone{Freq: 500, Duration: 200 * time.Millisecond, Wave: audio.WaveSquare}
	transmitTone = audio.Tone{Freq: 400, Duration: 2 * time.Second, Wave: audio.WaveSine}
	successTone  = audio.Tone{Freq: 800, Duration: 500 * time.Millisecond, Wave: audio.WaveTriangle}
)

// Transmission is one accepted submission
type Transmission struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Message string
	At      time.Time
}

// Form holds the three inputs, focus and the transmission cycle
// Timers are owned by the scope passed to New; closing it abandons an in-flight cycle
type Form struct {
	inputs [3]*ui.TextFieldState
	focus  Field
	status Status

	scope   *engine.Scope
	player  audio.Player
	pending *engine.Timer

	sent []Transmission
}

// New creates an idle form with focus on the name field
func New(scope *engine.Scope, player audio.Player) *Form {
	if player == nil {
		player = audio.Discard
	}
	f := &Form{scope: scope, player: player}
	for i := range f.inputs {
		f.inputs[i] = ui.NewTextFieldState("")
	}
	return f
}

// Input returns the state of an input field, nil for FieldSubmit
func (f *Form) Input(field Field) *ui.TextFieldState {
	if field >= FieldSubmit {
		return nil
	}
	return f.inputs[field]
}

// Focus moves focus to field, playing its focus tone
func (f *Form) Focus(field Field) {
	if field >= fieldCount {
		return
	}
	f.focus = field
	if field < FieldSubmit {
		f.player.Play(audio.Tone{Freq: Fields[field].FocusFreq, Duration: 100 * time.Millisecond, Wave: audio.WaveSquare})
	}
}

// FocusNext cycles focus forward through the inputs and the submit button
func (f *Form) FocusNext() {
	f.Focus((f.focus + 1) % fieldCount)
}

// FocusPrev cycles focus backward
func (f *Form) FocusPrev() {
	f.Focus((f.focus + fieldCount - 1) % fieldCount)
}

// Focused returns the focused control
func (f *Form) Focused() Field {
	return f.focus
}

// Validate checks required fields and the address format
func (f *Form) Validate() error {
	for i, in := range f.inputs {
		if strings.TrimSpace(in.Value()) == "" {
			return fmt.Errorf("%s: %w", Fields[i].Label, ErrRequired)
		}
	}
	if _, err := mail.ParseAddress(f.inputs[FieldEmail].Value()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	return nil
}

// Submit starts a transmission; rejected while one is in flight or when validation fails
// A submit during the success hold restarts the cycle and discards the pending return to idle
func (f *Form) Submit() error {
	if f.status == Transmitting {
		return ErrTransmitting
	}
	if f.status == Idle {
		f.player.Play(clickTone)
	}
	if err := f.Validate(); err != nil {
		return err
	}

	f.pending.Cancel()
	t := Transmission{
		ID:      uuid.Must(uuid.NewV7()),
		Name:    strings.TrimSpace(f.inputs[FieldName].Value()),
		Email:   strings.TrimSpace(f.inputs[FieldEmail].Value()),
		Message: f.inputs[FieldMessage].Value(),
		At:      f.scope.Scheduler().Now(),
	}
	f.sent = append(f.sent, t)
	log.Printf("contact: transmission %s from %s", t.ID, t.Email)

	f.status = Transmitting
	f.player.Play(transmitTone)
	f.pending = f.scope.After(TransmitDuration, f.succeed)
	return nil
}

func (f *Form) succeed() {
	f.status = Success
	f.player.Play(successTone)
	f.pending = f.scope.After(SuccessHold, func() {
		f.status = Idle
		f.pending = nil
	})
}

// HandleKey routes editing keys to the focused input; Tab cycles focus, Enter submits
// Returns the submit error when Enter was pressed
func (f *Form) HandleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyTab:
		f.FocusNext()
		return true, nil
	case tcell.KeyBacktab:
		f.FocusPrev()
		return true, nil
	case tcell.KeyEnter:
		return true, f.Submit()
	}
	if in := f.Input(f.focus); in != nil {
		return in.HandleKey(ev), nil
	}
	return false, nil
}

// Status returns the transmission state
func (f *Form) Status() Status {
	return f.status
}

// SubmitEnabled reports whether the submit button accepts presses
func (f *Form) SubmitEnabled() bool {
	return f.status != Transmitting
}

// ButtonLabel returns the submit button text for the current state
func (f *Form) ButtonLabel() string {
	switch f.status {
	case Transmitting:
		return "[TRANSMITTING ACROSS DIMENSIONS...]"
	case Success:
		return "[COSMIC TRANSMISSION SUCCESSFUL ✓]"
	}
	return "[INITIATE QUANTUM TRANSMISSION]"
}

// Sent returns accepted transmissions, oldest first
func (f *Form) Sent() []Transmission {
	return f.sent
}
