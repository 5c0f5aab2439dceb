package renderers

import (
	"strconv"

	"github.com/lixenwraith/mind-palace/monitor"
	"github.com/lixenwraith/mind-palace/navigation"
	"github.com/lixenwraith/mind-palace/render"
	"github.com/lixenwraith/mind-palace/shell"
	"github.com/lixenwraith/mind-palace/ui"
)

// panelAlpha is how strongly panel backgrounds cover the galaxy
const panelAlpha = 0.85

var (
	rgbLightGray = render.Hex("#D1D5DB")
	rgbMuted     = render.Hex("#6B7280")
	rgbIndigo    = render.Hex("#818CF8")
	rgbComment   = render.Hex("#6A9955")
	rgbSand      = render.Hex("#DCDCAA")
	rgbTeal      = render.Hex("#4EC9B0")
	rgbOrchid    = render.Hex("#C586C0")
)

var roomColors = map[navigation.Room]render.RGB{
	navigation.Welcome:          render.Hex("#4FC1FF"),
	navigation.PrefrontalCortex: render.Hex("#569CD6"),
	navigation.TemporalLobe:     rgbOrchid,
	navigation.LimbicSystem:     render.Hex("#F44747"),
	navigation.MotorCortex:      rgbSand,
	navigation.Synapse:          rgbTeal,
}

// RoomColor returns the menu color of a room
func RoomColor(r navigation.Room) render.RGB {
	if c, ok := roomColors[r]; ok {
		return c
	}
	return render.RgbTerminalGreen
}

func glass(r ui.Region) {
	r.Fill(render.RgbPanelBg, panelAlpha)
}

// NavPanel is the neural pathways menu: a two-column grid of room buttons
type NavPanel struct {
	nav  *navigation.Navigator
	hits *HitMap
}

// NewNavPanel creates the menu over nav
func NewNavPanel(nav *navigation.Navigator, hits *HitMap) *NavPanel {
	return &NavPanel{nav: nav, hits: hits}
}

// Render draws the menu and registers one navigate target per room
func (p *NavPanel) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r := region(buf, ComputeLayout(ctx.Width, ctx.Height, false).Nav)
	glass(r)
	inner := r.Card("NEURAL PATHWAYS", ui.LineRounded, render.RgbTerminalGreen)

	colW := inner.W / 2
	for i, room := range navigation.MenuRooms() {
		cell := inner.Sub((i%2)*colW, i/2, colW, 1)
		fg := RoomColor(room)
		label := " " + strconv.Itoa(i+1) + " " + room.Label()
		if room == p.nav.Room() {
			cell.Fill(fg, 0.25)
			cell.TextBold(0, 0, label, fg)
		} else {
			cell.Text(0, 0, label, fg)
		}
		p.hits.Add(cell, Target{Action: ActionNavigate, Room: room})
	}
}

// AudioState reports the user-facing audio toggle
type AudioState interface {
	Enabled() bool
}

// MonitorPanel shows the cosmetic gauges and the audio toggle
type MonitorPanel struct {
	gauges *monitor.Gauges
	audio  AudioState
	hits   *HitMap
}

// NewMonitorPanel creates the galaxy monitor
func NewMonitorPanel(gauges *monitor.Gauges, audio AudioState, hits *HitMap) *MonitorPanel {
	return &MonitorPanel{gauges: gauges, audio: audio, hits: hits}
}

type gaugeRow struct {
	label string
	value float64
	fg    render.RGB
}

// Render draws the monitor
func (p *MonitorPanel) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r := region(buf, ComputeLayout(ctx.Width, ctx.Height, false).Monitor)
	glass(r)
	inner := r.Card("GALAXY MONITOR", ui.LineRounded, render.RgbPurple)

	toggle := inner.Row(0)
	if p.audio != nil && p.audio.Enabled() {
		toggle.TextRight(0, "♪ AUDIO ON", render.RgbTerminalGreen)
	} else {
		toggle.TextRight(0, "× AUDIO OFF", render.RgbGray)
	}
	p.hits.Add(toggle, Target{Action: ActionAudio})

	s := p.gauges.Stats()
	coffee := render.RgbYellow
	if s.CoffeeCritical() {
		coffee = render.RgbRed
	}
	rows := []gaugeRow{
		{"CPU: Creativity", s.Creativity, render.RgbTerminalGreen},
		{"RAM: Coffee", s.Coffee, coffee},
		{"NET: Inspiration", s.Inspiration, render.RgbPurple},
		{"COSMIC: Awareness", s.Cosmic, rgbIndigo},
	}
	const labelW, pctW = 18, 5
	for i, g := range rows {
		y := 1 + i
		inner.Text(0, y, g.label, render.RgbGray)
		inner.Progress(labelW, y, inner.W-labelW-pctW, g.value/100, g.fg, render.RgbDarkGray)
		inner.TextRight(y, strconv.Itoa(int(g.value+0.5))+"%", g.fg)
	}

	inner.HLine(5, ui.LineSingle, render.RgbDarkGray)
	inner.Text(0, 6, "Status:", rgbMuted)
	inner.TextRight(6, "TRANSCENDENT", render.RgbTerminalGreen)
	inner.Text(0, 7, "Dimension:", rgbMuted)
	inner.TextRight(7, "∞D", render.RgbBlue)
}

// TerminalHint is shown in the terminal header
const TerminalHint = "Try: enable audio, singularity, hack reality"

// TerminalPanel is the faux shell: header, the last transcript lines and the input row
type TerminalPanel struct {
	shell       *shell.Shell
	nav         *navigation.Navigator
	prompt      string
	placeholder string
	hits        *HitMap
	open        bool
}

// NewTerminalPanel creates a closed terminal; prompt is the user@host header
func NewTerminalPanel(sh *shell.Shell, nav *navigation.Navigator, prompt, placeholder string, hits *HitMap) *TerminalPanel {
	return &TerminalPanel{shell: sh, nav: nav, prompt: prompt, placeholder: placeholder, hits: hits}
}

// IsVisible implements render.VisibilityToggle
func (p *TerminalPanel) IsVisible() bool { return p.open }

// SetOpen shows or hides the terminal
func (p *TerminalPanel) SetOpen(open bool) { p.open = open }

// Toggle flips visibility and returns the new state
func (p *TerminalPanel) Toggle() bool {
	p.open = !p.open
	return p.open
}

// Render draws the terminal
func (p *TerminalPanel) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r := region(buf, ComputeLayout(ctx.Width, ctx.Height, true).Terminal)
	glass(r)
	inner := r.Card("", ui.LineRounded, render.RgbDimGreen)

	x := inner.Text(0, 0, p.prompt, render.RgbGray)
	x += inner.Text(x, 0, p.nav.Room().Path(), render.RgbPurple)

	closeBtn := inner.Sub(inner.W-2, 0, 2, 1)
	closeBtn.Text(1, 0, "✕", render.RgbGray)
	p.hits.Add(closeBtn, Target{Action: ActionCloseTerminal})
	if hint := inner.Sub(0, 0, inner.W-3, 1); x+ui.Width(TerminalHint)+1 <= hint.W {
		hint.TextRight(0, TerminalHint, rgbMuted)
	}

	rows := inner.H - 2
	lines := p.shell.Transcript().Lines()
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	for i, line := range lines {
		fg := rgbLightGray
		if len(line) > 0 && line[0] == '$' {
			fg = render.RgbTerminalGreen
		}
		inner.Text(0, 1+i, line, fg)
	}

	y := inner.H - 1
	inner.Text(0, y, "$", render.RgbTerminalGreen)
	field := inner.Sub(2, y, inner.W-2, 1)
	field.TextField(0, p.shell.Input(), p.placeholder, render.RgbTerminalGreen, rgbMuted, true)
}
