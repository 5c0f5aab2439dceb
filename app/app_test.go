package app

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/mind-palace/config"
	"github.com/lixenwraith/mind-palace/contact"
	"github.com/lixenwraith/mind-palace/content"
	"github.com/lixenwraith/mind-palace/engine"
	"github.com/lixenwraith/mind-palace/navigation"
	"github.com/lixenwraith/mind-palace/render/renderers"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	t      *testing.T
	s      *Session
	clock  *engine.MockTimeProvider
	screen tcell.SimulationScreen
}

func newHarness(t *testing.T, tweak func(*config.Config, *content.Content)) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	c := content.Default()
	if tweak != nil {
		tweak(cfg, c)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(160, 50)
	t.Cleanup(screen.Fini)

	clock := engine.NewMockTimeProvider(epoch)
	s := NewSession(cfg, c, screen, nil, clock)
	t.Cleanup(s.Close)
	s.Start()
	s.Step()
	return &harness{t: t, s: s, clock: clock, screen: screen}
}

// run advances the mock clock by total, stepping one frame every 50ms
func (h *harness) run(total time.Duration) {
	const tick = 50 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < total; elapsed += tick {
		h.clock.Advance(tick)
		h.s.Step()
	}
}

func (h *harness) key(k tcell.Key, r rune) bool {
	return h.s.HandleEvent(tcell.NewEventKey(k, r, tcell.ModNone))
}

func (h *harness) typeText(text string) {
	for _, r := range text {
		h.key(tcell.KeyRune, r)
	}
}

// click presses and releases button 1 on a cell
func (h *harness) click(x, y int) {
	h.s.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	h.s.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

// find returns the first cell whose target satisfies match in the last frame's hit map
func (h *harness) find(match func(renderers.Target) bool) (int, int) {
	h.t.Helper()
	w, ht := h.screen.Size()
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			if target, ok := h.s.Hits().At(x, y); ok && match(target) {
				return x, y
			}
		}
	}
	h.t.Fatal("no matching click target")
	return 0, 0
}

func skipIntro(cfg *config.Config, _ *content.Content) {
	cfg.SkipIntro = true
}

func TestIntroReachesWelcome(t *testing.T) {
	h := newHarness(t, nil)
	assert.Equal(t, StageLoading, h.s.Stage())
	assert.False(t, h.s.Terminal().IsVisible())

	h.run(1600 * time.Millisecond)
	assert.Equal(t, StageBoot, h.s.Stage())
	assert.Equal(t, navigation.Boot, h.s.Navigator().Room())

	h.run(2 * time.Second)
	assert.Equal(t, StageMain, h.s.Stage())
	assert.Equal(t, navigation.Welcome, h.s.Navigator().Room())
	assert.True(t, h.s.Terminal().IsVisible(), "terminal opens after the reveal delay")
	require.NotNil(t, h.s.Room())
	assert.Len(t, h.s.Room().Lines, len(content.Default().Welcome.Lines))
}

func TestLoadingWaitsForScriptWithoutDuration(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config, c *content.Content) {
		cfg.Loading.Duration = config.Duration{}
		c.Loading.Scripts["short"] = content.Script{Prompt: "$ ", Lines: []string{"ok"}}
		cfg.Loading.Script = "short"
	})
	h.run(time.Second)
	assert.Equal(t, StageBoot, h.s.Stage())
}

func TestSkipIntro(t *testing.T) {
	h := newHarness(t, skipIntro)
	assert.Equal(t, StageMain, h.s.Stage())
	assert.Equal(t, navigation.Welcome, h.s.Navigator().Room())
	assert.True(t, h.s.Terminal().IsVisible())
	assert.Positive(t, h.s.Hits().Len())
}

func TestStageTeardownCancelsTimers(t *testing.T) {
	h := newHarness(t, nil)
	loadingTimers, _ := h.s.Scheduler().Pending()
	require.Positive(t, loadingTimers)

	h.run(4 * time.Second)
	require.Equal(t, StageMain, h.s.Stage())
	n := h.s.Orchestrator().Len()

	h.s.Close()
	timers, frames := h.s.Scheduler().Pending()
	assert.Zero(t, timers)
	assert.Zero(t, frames)
	assert.Less(t, h.s.Orchestrator().Len(), n, "stage renderers are unregistered")
}

func TestClickNavigates(t *testing.T) {
	h := newHarness(t, skipIntro)
	x, y := h.find(func(tg renderers.Target) bool {
		return tg.Action == renderers.ActionNavigate && tg.Room == navigation.Synapse
	})
	h.click(x, y)

	assert.Equal(t, navigation.Synapse, h.s.Navigator().Room())
	require.NotNil(t, h.s.Room().Form)
	assert.Equal(t, "Accessing synapse neural pathway...", h.s.Navigator().Transcript().Last())
}

func TestHeldButtonClicksOnce(t *testing.T) {
	h := newHarness(t, skipIntro)
	x, y := h.find(func(tg renderers.Target) bool {
		return tg.Action == renderers.ActionNavigate && tg.Room == navigation.MotorCortex
	})
	h.s.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	h.s.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 1, h.s.Navigator().Moves())
}

func TestTerminalTyping(t *testing.T) {
	h := newHarness(t, skipIntro)
	h.typeText("WhoAmI")
	h.key(tcell.KeyEnter, 0)

	assert.Equal(t, 1, h.s.Shell().Evaluated())
	assert.Contains(t, h.s.Navigator().Transcript().Lines(), "$ WhoAmI")
	assert.True(t, h.s.Shell().Input().Empty())
}

func TestEscapeAndDigits(t *testing.T) {
	h := newHarness(t, skipIntro)

	h.key(tcell.KeyRune, '3')
	assert.Equal(t, navigation.Welcome, h.s.Navigator().Room(), "digits type into the open terminal")

	h.key(tcell.KeyEscape, 0)
	require.False(t, h.s.Terminal().IsVisible())
	h.key(tcell.KeyRune, '3')
	assert.Equal(t, navigation.MenuRooms()[2], h.s.Navigator().Room())
	h.key(tcell.KeyRune, '9')
	assert.Equal(t, navigation.MenuRooms()[2], h.s.Navigator().Room())

	h.key(tcell.KeyEscape, 0)
	assert.True(t, h.s.Terminal().IsVisible())
}

func TestCloseButtonHidesTerminal(t *testing.T) {
	h := newHarness(t, skipIntro)
	x, y := h.find(func(tg renderers.Target) bool { return tg.Action == renderers.ActionCloseTerminal })
	h.click(x, y)
	assert.False(t, h.s.Terminal().IsVisible())
}

func TestContactFormInput(t *testing.T) {
	h := newHarness(t, skipIntro)
	h.s.Navigator().NavigateTo(navigation.Synapse)
	h.s.Step()

	x, y := h.find(func(tg renderers.Target) bool {
		return tg.Action == renderers.ActionFocus && tg.Field == contact.FieldEmail
	})
	h.click(x, y)
	form := h.s.Room().Form
	assert.Equal(t, contact.FieldEmail, form.Focused())

	h.typeText("nova@galaxy.dev")
	assert.Equal(t, "nova@galaxy.dev", form.Input(contact.FieldEmail).Value())
	assert.True(t, h.s.Shell().Input().Empty(), "terminal keeps its input")

	h.key(tcell.KeyBacktab, 0)
	h.typeText("Nova")
	h.key(tcell.KeyTab, 0)
	h.key(tcell.KeyTab, 0)
	h.typeText("hello")
	h.key(tcell.KeyEnter, 0)
	require.Len(t, form.Sent(), 1)
	assert.Equal(t, "Nova", form.Sent()[0].Name)

	h.s.Navigator().NavigateTo(navigation.Welcome)
	h.s.Navigator().NavigateTo(navigation.Synapse)
	assert.NotSame(t, form, h.s.Room().Form, "re-entry starts a fresh form")
	assert.Empty(t, h.s.Room().Form.Sent())
}

func TestAudioToggleClick(t *testing.T) {
	h := newHarness(t, skipIntro)
	x, y := h.find(func(tg renderers.Target) bool { return tg.Action == renderers.ActionAudio })

	h.click(x, y)
	assert.True(t, h.s.Audio().Enabled())
	assert.True(t, h.s.Audio().Silent(), "no device in tests")

	h.s.Step()
	h.click(x, y)
	assert.False(t, h.s.Audio().Enabled())
}

func TestPointerTrail(t *testing.T) {
	h := newHarness(t, skipIntro)
	for i := 0; i < 60; i++ {
		h.s.HandleEvent(tcell.NewEventMouse(10+i, 20, tcell.ButtonNone, tcell.ModNone))
	}
	p, seen := h.s.Pointer()
	require.True(t, seen)
	assert.Equal(t, 69.5, p.X)
	assert.Equal(t, 41.0, p.Y)
	assert.Positive(t, h.s.main.trail.Len())
	assert.LessOrEqual(t, h.s.main.trail.Len(), 16)
}

func TestSparksSpawnAndExpire(t *testing.T) {
	h := newHarness(t, skipIntro)
	h.run(3 * time.Second)
	assert.Positive(t, h.s.main.sparks.Len())
	assert.LessOrEqual(t, h.s.main.sparks.Len(), 31)
}

func TestFocusPausesClock(t *testing.T) {
	h := newHarness(t, skipIntro)
	h.s.HandleEvent(tcell.NewEventFocus(false))
	assert.True(t, h.s.Clock().IsPaused())

	before := h.s.Scheduler().Now()
	h.clock.Advance(time.Second)
	assert.Equal(t, before, h.s.Scheduler().Now())

	h.s.HandleEvent(tcell.NewEventFocus(true))
	assert.False(t, h.s.Clock().IsPaused())
}

func TestFocusIgnoredWhenDisabled(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config, _ *content.Content) {
		cfg.SkipIntro = true
		cfg.Display.PauseOnBlur = false
	})
	h.s.HandleEvent(tcell.NewEventFocus(false))
	assert.False(t, h.s.Clock().IsPaused())
}

func TestResize(t *testing.T) {
	h := newHarness(t, skipIntro)
	h.screen.SetSize(100, 30)
	h.s.HandleEvent(tcell.NewEventResize(100, 30))
	h.s.Step()

	w, ht := h.s.Orchestrator().Buffer().Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, ht)
}

func TestQuitAndDebugKeys(t *testing.T) {
	h := newHarness(t, skipIntro)
	assert.False(t, h.s.Debug().IsVisible())
	assert.True(t, h.key(tcell.KeyF12, 0))
	assert.True(t, h.s.Debug().IsVisible())

	assert.False(t, h.key(tcell.KeyCtrlC, 0))
	assert.True(t, h.s.Quit())
}

func TestMetricsPublished(t *testing.T) {
	h := newHarness(t, skipIntro)
	h.run(time.Second)

	reg := h.s.Registry()
	assert.Equal(t, "main", reg.Strings.Get("stage").Load())
	assert.Equal(t, "welcome", reg.Strings.Get("room").Load())
	assert.Equal(t, int64(h.s.Frame()), reg.Ints.Get("frame").Load())
	assert.Equal(t, h.s.ID.String(), reg.Strings.Get("session.id").Load())
}

func TestCloseIsIdempotent(t *testing.T) {
	h := newHarness(t, skipIntro)
	h.s.Close()
	assert.NotPanics(t, h.s.Close)
	assert.NoError(t, h.s.Audio().Enable())
	assert.False(t, h.s.Audio().Enabled())
}

func TestStageNames(t *testing.T) {
	assert.Equal(t, "none", StageNone.String())
	assert.Equal(t, "main", StageMain.String())
	assert.Equal(t, "unknown", StageKind(9).String())
}
