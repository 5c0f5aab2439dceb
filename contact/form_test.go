package contact

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/mind-palace/audio"
	"github.com/lixenwraith/mind-palace/engine"
)

type harness struct {
	clock *engine.MockTimeProvider
	sched *engine.Scheduler
	scope *engine.Scope
	rec   *audio.Recorder
	form  *Form
}

func newHarness() *harness {
	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	sched := engine.NewScheduler(clock)
	scope := sched.NewScope("synapse")
	rec := &audio.Recorder{}
	return &harness{clock: clock, sched: sched, scope: scope, rec: rec, form: New(scope, rec)}
}

func (h *harness) fill() {
	h.form.Input(FieldName).SetValue("Ada")
	h.form.Input(FieldEmail).SetValue("ada@cosmic.domain")
	h.form.Input(FieldMessage).SetValue("hello across dimensions")
}

func (h *harness) run(d time.Duration) {
	h.clock.Run(h.sched, d, 50*time.Millisecond)
}

func TestTransmissionCycle(t *testing.T) {
	h := newHarness()
	h.fill()
	assert.Equal(t, "[INITIATE QUANTUM TRANSMISSION]", h.form.ButtonLabel())

	require.NoError(t, h.form.Submit())
	assert.Equal(t, Transmitting, h.form.Status())
	assert.False(t, h.form.SubmitEnabled())
	assert.Equal(t, "[TRANSMITTING ACROSS DIMENSIONS...]", h.form.ButtonLabel())
	assert.Equal(t, []audio.Tone{clickTone, transmitTone}, h.rec.Tones())

	h.run(1950 * time.Millisecond)
	assert.Equal(t, Transmitting, h.form.Status())
	h.run(50 * time.Millisecond)
	assert.Equal(t, Success, h.form.Status())
	assert.Equal(t, "[COSMIC TRANSMISSION SUCCESSFUL ✓]", h.form.ButtonLabel())
	last, _ := h.rec.Last()
	assert.Equal(t, successTone, last)

	h.run(3 * time.Second)
	assert.Equal(t, Idle, h.form.Status())
	require.Len(t, h.form.Sent(), 1)
	assert.Equal(t, "ada@cosmic.domain", h.form.Sent()[0].Email)
	assert.Equal(t, uuid.Version(7), h.form.Sent()[0].ID.Version())
}

func TestSubmitRejectedWhileTransmitting(t *testing.T) {
	h := newHarness()
	h.fill()
	require.NoError(t, h.form.Submit())
	h.rec.Reset()

	assert.ErrorIs(t, h.form.Submit(), ErrTransmitting)
	assert.Empty(t, h.rec.Tones())
	assert.Len(t, h.form.Sent(), 1)
}

func TestResubmitDuringSuccessRestartsCycle(t *testing.T) {
	h := newHarness()
	h.fill()
	require.NoError(t, h.form.Submit())
	h.run(2 * time.Second)
	require.Equal(t, Success, h.form.Status())

	h.run(time.Second)
	require.NoError(t, h.form.Submit())
	assert.Equal(t, Transmitting, h.form.Status())

	// The first cycle's return to idle would have fired here
	h.run(2100 * time.Millisecond)
	assert.Equal(t, Success, h.form.Status())
	assert.Len(t, h.form.Sent(), 2)
}

func TestValidation(t *testing.T) {
	h := newHarness()
	assert.ErrorIs(t, h.form.Submit(), ErrRequired)
	assert.Equal(t, Idle, h.form.Status())

	h.fill()
	h.form.Input(FieldEmail).SetValue("not-an-address")
	assert.ErrorIs(t, h.form.Submit(), ErrInvalidEmail)

	h.form.Input(FieldEmail).SetValue("ada@cosmic.domain")
	h.form.Input(FieldMessage).SetValue("   ")
	assert.ErrorIs(t, h.form.Submit(), ErrRequired)
	assert.Empty(t, h.form.Sent())
}

func TestScopeCloseAbandonsCycle(t *testing.T) {
	h := newHarness()
	h.fill()
	require.NoError(t, h.form.Submit())
	h.scope.Close()
	h.run(10 * time.Second)
	assert.Equal(t, Transmitting, h.form.Status(), "no timer fires after teardown")
}

func TestFocusTones(t *testing.T) {
	h := newHarness()
	h.form.FocusNext()
	h.form.FocusNext()
	h.form.FocusNext()
	h.form.FocusNext()
	assert.Equal(t, FieldName, h.form.Focused())

	freqs := make([]float64, 0, 4)
	for _, tn := range h.rec.Tones() {
		freqs = append(freqs, tn.Freq)
	}
	assert.Equal(t, []float64{650, 700, 600}, freqs, "submit button focus is silent")

	h.form.FocusPrev()
	assert.Equal(t, FieldSubmit, h.form.Focused())
}

func TestHandleKeyTypesIntoFocusedField(t *testing.T) {
	h := newHarness()
	for _, r := range "Ada" {
		h.form.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	h.form.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	for _, r := range "ada@x.io" {
		h.form.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	assert.Equal(t, "Ada", h.form.Input(FieldName).Value())
	assert.Equal(t, "ada@x.io", h.form.Input(FieldEmail).Value())

	ok, err := h.form.HandleKey(tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone))
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrRequired)
}
